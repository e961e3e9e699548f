// Package parser converts YAML or JSON marketing specifications into a
// typed model.Document.
//
// Parsing runs in three stages:
//
//  1. Syntax: the input is decoded as YAML (gopkg.in/yaml.v3, keeping node
//     positions) or JSON (encoding/json). Malformed input and a root that is
//     not a mapping are reported as MKT-VAL-001.
//  2. Typing: the tree is decoded into model structs. A value of the wrong
//     type is reported as MKT-VAL-003.
//  3. Shape: the struct tags of package model are enforced with
//     go-playground/validator. A missing required field is MKT-VAL-002, any
//     other violation (range, enum, pattern, URL) is MKT-VAL-003.
//
// After decoding, documented defaults are applied (plan and campaign status
// "draft", milestone status "planned", currency "USD").
//
// # Basic Usage
//
//	p := parser.NewParser()
//	doc, err := p.Parse("marketing-spec.yaml")
//	if err != nil {
//	    var perr *errors.Error
//	    if stderrors.As(err, &perr) {
//	        fmt.Println(perr.Code, perr.Message, perr.Fix)
//	    }
//	}
//
// The first violation is returned; all shape violations are listed in the
// error's Details.
package parser
