// mspec validates and scaffolds marketing specifications: a single YAML or
// JSON document describing a project, its products, marketing plans,
// campaigns, channels, tools, content templates, milestones and analytics.
//
// Usage:
//
//	# Validate a specification
//	mspec validate specs/marketing-spec.yaml
//
//	# Fail on warnings too, with JSON output for CI
//	mspec validate specs/marketing-spec.yaml --strict --format json
//
//	# Re-validate on every save and every morning at 08:00
//	mspec watch specs/marketing-spec.yaml --schedule "0 8 * * *"
//
//	# Write a starter specification
//	mspec init specs/marketing-spec.yaml --template default
//
//	# Create a new project directory
//	mspec new "Acme Analytics" --template full
//
//	# List the validation rules
//	mspec rules
package main

import "os"

func main() {
	os.Exit(Execute())
}
