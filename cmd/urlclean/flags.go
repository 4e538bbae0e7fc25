package main

import (
	"flag"
	"strings"
)

type AppFlags struct {
	InputFile  string
	ConfigFile string
	Categories []string
	Params     []string
	Only       []string
}

func ParseFlags() AppFlags {
	inputFile := flag.String("file", "", "Path to a text file containing URLs to clean, one per line. Reads stdin when not set.")
	inputFileAlias := flag.String("f", "", "Alias for -file")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	categories := flag.String("categories", "", "Comma-separated tracking categories to remove (analytics,social,email,ecommerce,other). Empty means all.")
	params := flag.String("params", "", "Comma-separated extra parameter names to remove in addition to the selected categories.")
	only := flag.String("only", "", "Comma-separated parameter names to remove instead of the tracking database.")

	flag.Parse()

	flags := AppFlags{}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	flags.Categories = splitList(*categories)
	flags.Params = splitList(*params)
	flags.Only = splitList(*only)

	return flags
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
