package validator

import (
	"fmt"
	"regexp"
	"strings"

	specErrors "mercator-hq/marketingspec/pkg/spec/errors"
	"mercator-hq/marketingspec/pkg/spec/model"
)

var platformPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func (s *session) validateChannel(ch *model.Channel) {
	e := s.entity(EntityChannel, ch.ID)

	e.run(CodeChannelPlatform, func(r *rule) {
		if !platformPattern.MatchString(ch.Platform) {
			r.warning("platform",
				fmt.Sprintf("Platform name '%s' should be lowercase with hyphens", ch.Platform),
				fmt.Sprintf("Use '%s' instead", strings.ReplaceAll(strings.ToLower(strings.TrimSpace(ch.Platform)), " ", "-")))
		}
	})

	e.runIf(ch.ToolID != "", CodeChannelTool, func(r *rule) {
		if !s.tools.has(ch.ToolID) {
			r.error("tool_id",
				fmt.Sprintf("Tool '%s' does not exist", ch.ToolID),
				refFix(fmt.Sprintf("Add Tool with id='%s' or remove tool_id", ch.ToolID), ch.ToolID, s.tools, "tools"))
		}
	})

	maxLen, hasMaxLen := ch.Constraints[model.ConstraintMaxTextLength]
	e.runIf(hasMaxLen, CodeChannelTextLimit, func(r *rule) {
		field := "constraints." + model.ConstraintMaxTextLength
		n, ok := number(maxLen)
		switch {
		case !ok:
			r.error(field,
				fmt.Sprintf("max_text_length must be a number (got %v)", maxLen),
				"Set a positive character limit")
		case n <= 0:
			r.error(field,
				fmt.Sprintf("max_text_length must be > 0 (got %g)", n),
				"Set a positive character limit")
		}
	})
}

func (s *session) validateTool(t *model.Tool) {
	e := s.entity(EntityTool, t.ID)

	e.run(CodeToolMCPConfig, func(r *rule) {
		if t.Type == model.ToolTypeMCP && len(t.MCPConfig) == 0 {
			r.error("mcp_config",
				"mcp_config is required when type='mcp'",
				"Add mcp_config with server details")
		}
	})

	e.run(CodeToolAPIConfig, func(r *rule) {
		if t.Type == model.ToolTypeRESTAPI && len(t.APIConfig) == 0 {
			r.error("api_config",
				"api_config is required when type='rest_api'",
				"Add api_config with base_url and authentication")
		}
	})

	e.run(CodeToolType, func(r *rule) {
		if t.Type.Known() {
			return
		}
		known := make([]string, 0, 3)
		for _, tt := range model.ToolTypes() {
			known = append(known, string(tt))
		}
		fix := "Use one of: " + strings.Join(known, ", ")
		if hint := specErrors.Suggest(string(t.Type), known); hint != "" {
			fix += ". " + hint
		}
		r.error("type", fmt.Sprintf("Unknown tool type '%s'", t.Type), fix)
	})

	baseURL, hasBaseURL := t.APIConfig[model.APIConfigBaseURL]
	e.runIf(hasBaseURL, CodeToolHTTPS, func(r *rule) {
		field := "api_config." + model.APIConfigBaseURL
		u, ok := baseURL.(string)
		if !ok {
			r.error(field,
				fmt.Sprintf("API base_url must be a string (got %v)", baseURL),
				"Set base_url to an https:// URL")
			return
		}
		if !strings.HasPrefix(u, "https://") {
			r.error(field,
				fmt.Sprintf("API base_url must use HTTPS (got: %s)", u),
				"Use 'https://' instead of 'http://'")
		}
	})

	e.runIf(len(t.ChannelIDs) > 0, CodeToolChannels, func(r *rule) {
		r.checkRefs("channel_ids", t.ChannelIDs, s.channels, "Channel", "channels")
	})
}
