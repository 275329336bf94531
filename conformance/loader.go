package conformance

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the YAML conformance corpus,
// relative to this package
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks the corpus directory and loads all test cases
func LoadAllTests() ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.Walk(TestPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		tests, err := loadTestFile(path)
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(TestPath, path)
		for _, test := range tests {
			loaded = append(loaded, LoadedTest{
				File:  relPath,
				Suite: test.Suite,
				Test:  test.Test,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadTestFile parses a single YAML file and returns all test cases
func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	var tests []LoadedTest
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			Suite: suite,
			Test:  test,
		})
	}

	return tests, nil
}
