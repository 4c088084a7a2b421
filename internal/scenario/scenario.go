// Package scenario читает сценарии расчета из YAML файлов.
//
// Файл содержит либо один сценарий с теми же ключами, что и запрос HTTP API,
// либо список под ключом scenarios:
//
//	scenarios:
//	  - name: base
//	    principal: 10000
//	    annual_rate: 7
//	    years: 10
//	    monthly_contribution: 500
//	    compounding_frequency: monthly
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/config"
	"github.com/cloud-ru/firefly-go/internal/models"
	"github.com/cloud-ru/firefly-go/internal/validators"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ErrEmpty возвращается для файла без сценариев
var ErrEmpty = errors.New("scenario file contains no scenarios")

// Scenario один именованный сценарий
type Scenario struct {
	Name                    string `yaml:"name"`
	models.CalculateRequest `yaml:",inline"`
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load читает сценарии из файла
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// Parse разбирает YAML документ; неизвестные ключи считаются ошибкой
func Parse(data []byte) ([]Scenario, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(probe) == 0 {
		return nil, ErrEmpty
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scenarios []Scenario
	if _, ok := probe["scenarios"]; ok {
		var f file
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		scenarios = f.Scenarios
	} else {
		var s Scenario
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		scenarios = []Scenario{s}
	}

	if len(scenarios) == 0 {
		return nil, ErrEmpty
	}
	for i := range scenarios {
		if scenarios[i].Name == "" {
			scenarios[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return scenarios, nil
}

// Inputs проверяет все сценарии и возвращает их Input. Ошибки всех
// некорректных сценариев собираются в одну.
func Inputs(cfg *config.Config, scenarios []Scenario) ([]calculations.Input, error) {
	var result *multierror.Error
	inputs := make([]calculations.Input, 0, len(scenarios))

	for _, s := range scenarios {
		in, err := validators.InputFromRequest(cfg, s.CalculateRequest)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.Name, err))
			continue
		}
		inputs = append(inputs, in)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return inputs, nil
}
