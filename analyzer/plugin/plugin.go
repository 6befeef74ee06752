// Custom plugin module for golangci-lint
package plugin

import (
	"strconv"

	"github.com/cschleiden/go-futures/analyzer"
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"
)

func init() {
	register.Plugin("gofutures", New)
}

type settings struct {
	CheckSleep bool `json:"checksleep"`
}

func New(conf any) (register.LinterPlugin, error) {
	s := settings{CheckSleep: true}

	if conf != nil {
		decoded, err := register.DecodeSettings[settings](conf)
		if err != nil {
			return nil, err
		}

		s = decoded
	}

	return &analyzerPlugin{settings: s}, nil
}

type analyzerPlugin struct {
	settings settings
}

func (p *analyzerPlugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	a := analyzer.New()

	if err := a.Flags.Set("checksleep", strconv.FormatBool(p.settings.CheckSleep)); err != nil {
		return nil, err
	}

	return []*analysis.Analyzer{a}, nil
}

func (p *analyzerPlugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
