// Package gitsource reads marketing specifications out of a local Git
// repository.
//
// A Repository is opened from any path inside a work tree. It resolves
// revisions ("HEAD", "main~2", a tag or a SHA), reads a file as it was
// committed at that revision, and lists the commits that changed a file.
// The validate command uses it for --rev and the history command uses it to
// re-validate every committed version of a specification.
//
// Example:
//
//	repo, err := gitsource.Open("specs/marketing-spec.yaml")
//	if err != nil {
//		return err
//	}
//	data, commit, err := repo.ReadFile("HEAD~1", "specs/marketing-spec.yaml")
package gitsource
