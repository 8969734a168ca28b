// kanjize converts between integers and Japanese kanji numerals.
//
// It renders numbers in the traditional all-kanji style (二千二十五), the
// mixed style used in print (5807万6099) or digit by digit (二〇二五), and
// parses any of those forms back, including formal daiji glyphs (壱萬弐阡)
// and full-width digits.
//
// Usage:
//
//	# Render numbers
//	kanjize format 2025 58076099 --style mixed
//
//	# Parse numerals
//	kanjize parse 二千二十五 5807万6099
//
//	# Convert a file line by line
//	kanjize convert --file numbers.txt --to kanji --output csv
//
//	# Serve the HTTP API
//	kanjize serve --config kanjize.yaml --watch
//
//	# Check a configuration file
//	kanjize validate --config kanjize.yaml
package main

func main() {
	Execute()
}
