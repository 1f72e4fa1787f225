package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestList_Text(t *testing.T) {
	stdout, _, err := execute(t, nil, "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.HasPrefix(stdout, "FHIR Engine Claude Skills\n"+strings.Repeat("=", 50)+"\n") {
		t.Errorf("expected header banner:\n%s", stdout)
	}
	for _, want := range []string{
		"Troubleshooting & Help:",
		"Code Generation:",
		"Analysis & Mapping:",
		"  - fhir-project-setup",
		"  - fhir-handler-generator",
		"  - fhir-data-mapping",
		"Total: 9 skills",
		"To install: fhir-skills install",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}

	// Categories appear in their fixed display order.
	troubleshooting := strings.Index(stdout, "Troubleshooting & Help:")
	codegen := strings.Index(stdout, "Code Generation:")
	tasks := strings.Index(stdout, "Analysis & Mapping:")
	if !(troubleshooting < codegen && codegen < tasks) {
		t.Errorf("categories out of order (%d, %d, %d):\n%s", troubleshooting, codegen, tasks, stdout)
	}
}

func TestList_TextSortedWithinCategory(t *testing.T) {
	stdout, _, err := execute(t, nil, "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	start := strings.Index(stdout, "Code Generation:")
	if start < 0 {
		t.Fatalf("Code Generation section missing:\n%s", stdout)
	}
	section := stdout[start:]
	section = section[:strings.Index(section, "\n\n")]
	var names []string
	for _, line := range strings.Split(section, "\n")[1:] {
		names = append(names, strings.TrimPrefix(line, "  - "))
	}

	want := []string{
		"fhir-custom-datastore",
		"fhir-custom-resource",
		"fhir-handler-generator",
		"handler-patterns",
	}
	if len(names) != len(want) {
		t.Fatalf("code generation skills = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("skill[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestList_JSON(t *testing.T) {
	stdout, _, err := execute(t, nil, "list", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var entries []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Path     string `json:"path"`
	}
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}

	if len(entries) != 9 {
		t.Fatalf("len(entries) = %d, want 9", len(entries))
	}

	byName := make(map[string]struct{ category, path string }, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.Category == "" || e.Path == "" {
			t.Errorf("entry has empty field: %+v", e)
		}
		byName[e.Name] = struct{ category, path string }{e.Category, e.Path}
	}

	setup, ok := byName["fhir-project-setup"]
	if !ok {
		t.Fatal("fhir-project-setup missing from JSON output")
	}
	if setup.category != "Troubleshooting & Help" || setup.path != "fhir-project-setup" {
		t.Errorf("fhir-project-setup entry = %+v", setup)
	}

	mapping, ok := byName["fhir-data-mapping"]
	if !ok {
		t.Fatal("fhir-data-mapping missing from JSON output")
	}
	if mapping.category != "Analysis & Mapping" || mapping.path != "tasks/fhir-data-mapping" {
		t.Errorf("fhir-data-mapping entry = %+v", mapping)
	}

	if strings.Contains(stdout, "Total:") {
		t.Errorf("--json output must not mix in text summary:\n%s", stdout)
	}
}
