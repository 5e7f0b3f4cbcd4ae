package chart

import (
	"fmt"

	"github.com/guttosm/cryptochart/internal/domain/errs"
	"github.com/guttosm/cryptochart/internal/domain/models"
)

// ResolveID returns the provider id of the first asset whose symbol equals
// symbol exactly (case-sensitive).
//
// When several assets share a symbol the first one in directory order wins.
// The provider lists assets by market cap rank, so this picks the largest.
func ResolveID(dir models.AssetDirectory, symbol string) (string, error) {
	for _, a := range dir {
		if a.Symbol == symbol {
			return a.ID, nil
		}
	}
	return "", fmt.Errorf("%w: symbol %q", errs.ErrNotFound, symbol)
}
