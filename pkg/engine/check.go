package engine

import (
	"github.com/arthur-debert/themer/pkg/types"
)

// Check verifies that every configured block can be updated: its target is
// readable and holds the block's marker region. Nothing is rendered or
// written.
func (e *Engine) Check(cfg *types.Config) ([]BlockResult, error) {
	units, err := plan(cfg, nil)
	if err != nil {
		return nil, err
	}

	results := make([]BlockResult, 0, len(units))
	for _, u := range units {
		res := u.result(StatusOK)
		if _, _, err := e.locate(u); err != nil {
			res.Status = StatusFailed
			res.Err = err
		}
		results = append(results, res)
	}

	e.logger.Debug().Int("blocks", len(results)).Msg("Checked blocks")
	return results, nil
}
