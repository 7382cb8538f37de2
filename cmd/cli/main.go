package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/Arrey22/Decision-making/internal/scenario"
	"github.com/Arrey22/Decision-making/pkg/inference"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the scenario file (.json, .yaml or .yml)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the verdicts will be written; if empty, they'll be written into the Standard Output")
	formulaPtr := flag.Bool("formula", false, "Print the knowledge-base formula before the verdicts")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("a scenario file must be specified")
	}

	// Extract input
	var input scenario.Input
	var err error
	switch extension := strings.ToLower(path.Ext(filePath)); extension {
	case ".json":
		input, err = scenario.InputFromJson(filePath)
	case ".yaml", ".yml":
		input, err = scenario.InputFromYaml(filePath)
	default:
		log.Fatalf("%v is not a supported scenario format", extension)
	}
	if err != nil {
		log.Fatalf("cannot parse scenario file: %v", err)
	}

	if *formulaPtr {
		knowledge, err := input.Knowledge()
		if err != nil {
			log.Fatalf("cannot build knowledge base: %v", err)
		}
		fmt.Printf("Knowledge base: %v\n", knowledge.Formula())
	}

	// Query every action against the knowledge base
	checker := inference.NewEnumerationChecker()
	verdicts, err := input.Verdicts(checker)
	if err != nil {
		log.Fatalf("an error occurred during model checking: %v", err)
	}

	// Marshal verdicts into json
	verdictsJson, err := json.Marshal(verdicts)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(verdictsJson))
	} else {
		if err := os.WriteFile(outFile, verdictsJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}
