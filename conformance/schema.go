package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Source      string      `yaml:"source"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test. A test
// either runs to completion and prints exactly the given output lines,
// or fails in a named stage with a diagnostic containing a substring.
type Expectation struct {
	Output   []string `yaml:"output,omitempty"`   // exact print lines, in order
	Error    string   `yaml:"error,omitempty"`    // lexer|parser|resolver|runtime
	Contains string   `yaml:"contains,omitempty"` // diagnostic substring
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
