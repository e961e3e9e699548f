// Package spec parses and validates marketing-operations specifications.
//
// A specification is a YAML or JSON document describing a project, its
// products, marketing plans, campaigns, channels, automation tools, content
// templates, milestones and analytics reports.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - model: typed document model and enumerations
// - parser: YAML/JSON decoding and shape checks
// - validator: business rules and cross-entity reference checks
// - errors: parse error taxonomy with codes and suggestions
//
// # Basic Usage
//
//	doc, res, err := spec.ParseAndValidate("marketing-spec.yaml")
//	if err != nil {
//	    log.Fatal(err) // malformed input, see package errors
//	}
//	if res.Failed(strict) {
//	    for _, issue := range res.Issues() {
//	        fmt.Println(issue)
//	    }
//	}
//
// A parse error means the document could not be read into the model. Rule
// violations are never errors; they are issues on the Result.
package spec
