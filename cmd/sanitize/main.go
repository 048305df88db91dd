package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Numeric inventory fields that upstream exports sometimes ship as strings
// ("1,234.50") instead of numbers.
var numericKeys = map[string]bool{
	"fam_cost":     true,
	"retail_price": true,
	"labor_hours":  true,
	"job_price":    true,
}

// main normalizes numeric fields in an inventory document.
// Usage: go run cmd/sanitize/main.go -in Models/inventory.json -out Models/inventory.json
// This is a standalone CLI tool, not part of the main application
func main() {
	in := flag.String("in", "Models/inventory.json", "input inventory document")
	out := flag.String("out", "", "output path (defaults to overwriting the input)")
	flag.Parse()

	if *out == "" {
		*out = *in
	}

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FAMVANS PARTS - Inventory Sanitizer")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}

	var doc any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		log.Fatalf("Failed to parse %s: %v", *in, err)
	}

	fixed := sanitize(doc)
	log.Printf("✓ Normalized %d field(s)", fixed)

	output, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode document: %v", err)
	}
	output = append(output, '\n')

	if err := os.WriteFile(*out, output, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Println()
	fmt.Printf("✅ Wrote sanitized file to: %s\n", *out)
}

// sanitize walks the document converting string values under numeric keys.
// It returns the number of values it changed.
func sanitize(node any) int {
	fixed := 0
	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if numericKeys[key] {
				converted, changed := tryNumber(val)
				if changed {
					v[key] = converted
					fixed++
				}
				continue
			}
			fixed += sanitize(val)
		}
	case []any:
		for _, item := range v {
			fixed += sanitize(item)
		}
	}
	return fixed
}

// tryNumber converts a string like "1,234.50" to a JSON number. Empty and
// nil values become 0; anything unparseable is left alone.
func tryNumber(val any) (any, bool) {
	switch v := val.(type) {
	case nil:
		return json.Number("0"), true
	case json.Number:
		return v, false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return json.Number("0"), true
		}
		s = strings.ReplaceAll(s, ",", "")
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return val, false
		}
		return json.Number(s), true
	default:
		return val, false
	}
}
