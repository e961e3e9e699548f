package gitsource

import (
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitInfo contains metadata about a Git commit.
type CommitInfo struct {
	SHA       string    `json:"sha"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// ShortSHA returns the first seven characters of the commit hash.
func (c *CommitInfo) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// Subject returns the first line of the commit message.
func (c *CommitInfo) Subject() string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return subject
}

func commitInfo(c *object.Commit) *CommitInfo {
	return &CommitInfo{
		SHA:       c.Hash.String(),
		Author:    c.Author.Name,
		Email:     c.Author.Email,
		Timestamp: c.Author.When,
		Message:   c.Message,
	}
}
