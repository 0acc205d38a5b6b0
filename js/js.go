package main

//go:generate gopherjs build --minify

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
	"github.com/wbrown/hexcalls"
)

var scanner = hexcalls.NewScanner()

func ScanTokens(text string) []string {
	tokens := scanner.Scan(&text)
	result := make([]string, len(tokens))
	for idx, token := range tokens {
		result[idx] = string(token)
	}
	return result
}

func Fragments(text string) string {
	tokens := scanner.Scan(&text)
	return tokens.Fragments()
}

func init() {
	js.Module.Get("exports").Set("scanTokens", ScanTokens)
	js.Module.Get("exports").Set("fragments", Fragments)
	log.Printf("hexcalls scanner loaded")
}

func main() {

}
