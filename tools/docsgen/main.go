package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Command Command `yaml:"command"`
}

type Command struct {
	ID          string     `yaml:"id"`
	Short       string     `yaml:"short"`
	Description string     `yaml:"description"`
	Usage       string     `yaml:"usage"`
	Flags       []Flag     `yaml:"flags"`
	Examples    []Example  `yaml:"examples"`
	Notes       []string   `yaml:"notes,omitempty"`
	ExitCodes   []ExitCode `yaml:"exit_codes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	More        string `yaml:"more,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type ExitCode struct {
	Code    int    `yaml:"code"`
	Meaning string `yaml:"meaning"`
}

type TemplateData struct {
	Command
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {

	docs := os.Args[1]

	data, _ := os.ReadFile(docs + "/templates/nmlctl.yaml")
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		panic(err)
	}

	cmd := config.Command
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].ID < cmd.Flags[j].ID
	})

	// Prepare template data
	metadata := TemplateData{
		Command: cmd,
		Date:    time.Now().Format("January 2, 2006"),
		Version: getVersion(),
	}

	types := []Outputs{
		{Template: docs + "/templates/nmlctl.md.tmpl", Folder: docs + "/commands/", Suffix: ".md"},
		{Template: docs + "/templates/nmlctl.man.tmpl", Folder: docs + "/./man/share/man1/", Suffix: ".1"},
	}

	for _, t := range types {
		if err := os.MkdirAll(t.Folder, 0755); err != nil {
			panic(err)
		}

		file, _ := os.Create(t.Folder + t.Prefix + cmd.ID + t.Suffix)
		fmt.Println("Generating", t.Folder+t.Prefix+cmd.ID+t.Suffix)
		tmpl, err := template.ParseFiles(t.Template)
		if err != nil {
			panic(err)
		}

		if err := tmpl.Execute(file, metadata); err != nil {
			panic(err)
		}

		file.Close()
	}
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
