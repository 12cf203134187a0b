package ctl

import (
	"encoding/json"
	"fmt"

	"llmctl/internal/selector"
	"llmctl/pkg/types"
)

// Select reports which model this host should use given its memory.
func (a *App) Select(asJSON bool) error {
	mem := a.MemGB()
	model := selector.Select(mem, a.Cfg.Thresholds(), a.Cfg.Tiers())
	a.Log.Debug().Int("ram_gb", mem).Str("model", model).Msg("model selected")

	if asJSON {
		return json.NewEncoder(a.Out).Encode(types.Selection{RAMGB: mem, Model: model})
	}
	fmt.Fprintf(a.Out, "RAM: %d GB\n", mem)
	fmt.Fprintf(a.Out, "Selected: %s\n", model)
	return nil
}
