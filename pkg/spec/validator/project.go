package validator

import (
	"fmt"
	"sort"
	"strings"

	"mercator-hq/marketingspec/pkg/spec/model"
)

const (
	minKeyFeatures = 3
	maxKeyFeatures = 5
)

// handleStyle is the expected handle prefix convention per platform.
var handleStyle = map[string]struct {
	display string
	wantAt  bool
}{
	"twitter": {"Twitter", true},
	"github":  {"GitHub", false},
	"gitlab":  {"GitLab", false},
}

func (s *session) validateProject(p *model.Project) {
	e := s.entity(EntityProject, "")

	e.runIf(len(p.SocialHandles) > 0, CodeSocialHandles, func(r *rule) {
		platforms := make([]string, 0, len(p.SocialHandles))
		for platform := range p.SocialHandles {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)

		for _, platform := range platforms {
			handle := p.SocialHandles[platform]
			style, ok := handleStyle[strings.ToLower(platform)]
			if !ok {
				continue
			}
			field := "social_handles." + platform
			hasAt := strings.HasPrefix(handle, "@")
			switch {
			case style.wantAt && !hasAt:
				r.warning(field,
					fmt.Sprintf("%s handle '%s' should start with '@'", style.display, handle),
					fmt.Sprintf("Use '@%s' instead", handle))
			case !style.wantAt && hasAt:
				r.warning(field,
					fmt.Sprintf("%s username should not have '@' prefix", style.display),
					fmt.Sprintf("Use '%s' instead", strings.TrimPrefix(handle, "@")))
			}
		}
	})
}

func (s *session) validateProduct(p *model.Product) {
	e := s.entity(EntityProduct, p.ID)

	e.run(CodeProductFeatures, func(r *rule) {
		n := len(p.KeyFeatures)
		switch {
		case n < minKeyFeatures:
			r.warning("key_features",
				fmt.Sprintf("Product has only %d features (recommended: %d-%d)", n, minKeyFeatures, maxKeyFeatures),
				"Add more key features to better communicate product value")
		case n > maxKeyFeatures:
			r.warning("key_features",
				fmt.Sprintf("Product has %d features (recommended: %d-%d)", n, minKeyFeatures, maxKeyFeatures),
				fmt.Sprintf("Focus on the top %d-%d features for clarity", minKeyFeatures, maxKeyFeatures))
		}
	})

	e.runIf(p.LaunchDate != "", CodeProductLaunchDate, func(r *rule) {
		launch, err := s.parseDate(p.LaunchDate)
		if err != nil {
			r.error("launch_date",
				fmt.Sprintf("Invalid date format: '%s'", p.LaunchDate),
				"Use ISO 8601 format: YYYY-MM-DD")
			return
		}
		if launch.After(s.now) {
			r.info("launch_date",
				fmt.Sprintf("Product launch is scheduled for %s", p.LaunchDate), "")
		}
	})
}
