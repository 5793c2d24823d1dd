// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package rjson implements a parser for relaxed JSON.
//
// Relaxed JSON is a superset of JSON that also permits trailing commas in
// objects and arrays, strings in single quotation marks, bare identifiers
// (which are read as strings), and line (//) and block (/* ... */) comments:
//
//	{
//	  // Bare words are strings.
//	  name: rjson,
//	  'tags': [fast, 'small',],  /* trailing commas are OK */
//	}
//
// # Transforming
//
// Transform rewrites relaxed JSON text into standard JSON, without checking
// its structure. The result can be passed to any JSON decoder:
//
//	std, err := rjson.Transform(input)
//	if err != nil {
//	   log.Fatalf("Transform failed: %v", err)
//	}
//	err = json.Unmarshal([]byte(std), &v)
//
// Transform leaves standard JSON text unchanged.
//
// # Parsing
//
// Parse parses text into a value tree (see package ast). By default, the
// relaxed syntax is accepted and the first syntax error ends parsing with an
// error of concrete type *SyntaxError:
//
//	v, err := rjson.Parse(input, nil)
//
// A tolerant parse recovers from syntax errors by synthesizing the tokens it
// expected to find, and always produces a value. If any recovery was needed,
// the error has concrete type *ToleranceError and lists the warnings:
//
//	v, err := rjson.Parse(input, &rjson.Options{Tolerant: true})
//	var terr *rjson.ToleranceError
//	if errors.As(err, &terr) {
//	   for _, w := range terr.Warnings {
//	      log.Printf("line %d: %s", w.Line, w.Message)
//	   }
//	   // v is the recovered value, also in terr.Value.
//	}
//
// For standard JSON input, Parse produces the same value as a standard JSON
// decoder, and a Reviver is called with the same sequence of keys and values
// as the JavaScript JSON.parse function would use.
//
// # Lexing
//
// The lexer is driven by an ordered table of rules, each a regular expression
// and a constructor for the token it matches. The tables used by the parser
// are available from StrictRules and RelaxedRules, and MakeLexer constructs a
// lexer from any table.
package rjson
