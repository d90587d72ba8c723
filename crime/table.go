package crime

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

// LoadTable reads the crime reference data from a YAML file. The file
// lists states, cities and sub-areas as sequences so the declaration
// order survives parsing; that order drives the resolver's
// first-match-wins lookup.
func LoadTable(path string) (schema.CrimeTable, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return schema.CrimeTable{}, err
	}
	return ParseTable(content)
}

// ParseTable decodes crime reference data from YAML bytes.
func ParseTable(content []byte) (schema.CrimeTable, error) {
	var table schema.CrimeTable
	if err := yaml.Unmarshal(content, &table); err != nil {
		return schema.CrimeTable{}, fmt.Errorf("parse crime table: %s", err)
	}
	return table, nil
}
