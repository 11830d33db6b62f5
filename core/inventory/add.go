package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/validator"
)

// AddRequest describes one or more new assets. IDs is a comma separated list;
// every identifier gets the same remaining fields.
type AddRequest struct {
	IDs             string `json:"id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	PurchaseDate    string `json:"purchase_date" validate:"omitempty,date"`
	StorageLocation string `json:"storage_location" validate:"required"`
}

func (r AddRequest) stored(id string) asset.Stored {
	ast := asset.Stored{
		ID:              id,
		Name:            strings.TrimSpace(r.Name),
		StorageLocation: strings.TrimSpace(r.StorageLocation),
	}
	if d := strings.TrimSpace(r.Description); d != "" {
		ast.Description = &d
	}
	if p := strings.TrimSpace(r.PurchaseDate); p != "" {
		date := asset.MustDate(p).String()
		ast.PurchaseDate = &date
	}
	return ast
}

// Add inserts one asset per identifier. The whole batch is checked for
// uniqueness against itself, the registry and the store before anything is
// written. The inserts are not transactional: if one fails, the ids inserted
// before it stay committed and are returned along with the error.
func (s *Session) Add(ctx context.Context, req AddRequest) (added []string, err error) {
	ctx, span := s.start(ctx, "add")
	defer func() { s.finish(ctx, span, "add", strings.Join(added, ","), err) }()

	if err := validator.ValidateStruct(req); err != nil {
		return nil, asset.ValidationError{Op: "add", Err: err}
	}
	ids, err := asset.ParseIDs(req.IDs)
	if err != nil {
		return nil, err
	}

	var existing []string
	for _, id := range ids {
		if _, ok := s.reg.IndexOf(id); ok {
			existing = append(existing, id)
			continue
		}
		_, err := s.repo.FindAsset(ctx, id)
		switch {
		case err == nil:
			existing = append(existing, id)
		case errors.As(err, new(asset.NotFoundError)):
		default:
			return nil, asset.StoreUnavailableError{Op: "find asset", AssetID: id, Err: err}
		}
	}
	if len(existing) > 0 {
		return nil, asset.ValidationError{Op: "add", IDs: existing, Field: asset.FieldID.String(), Reason: "asset identifiers already exist"}
	}

	for _, id := range ids {
		if err = s.repo.InsertAsset(ctx, req.stored(id)); err != nil {
			if errors.Is(err, asset.ErrDuplicateKey) {
				err = asset.ValidationError{Op: "add", IDs: []string{id}, Field: asset.FieldID.String(), Reason: "asset identifiers already exist", Err: err}
			} else {
				err = asset.StoreUnavailableError{Op: "insert asset", AssetID: id, Err: err}
			}
			break
		}
		added = append(added, id)
	}

	if len(added) > 0 {
		if _, rerr := s.reload(ctx, false); rerr != nil && err == nil {
			err = rerr
		}
		s.record("add", added, addMessage(added))
	}
	return added, err
}

func addMessage(ids []string) string {
	if len(ids) == 1 {
		return fmt.Sprintf("Added asset %s", ids[0])
	}
	return fmt.Sprintf("Added %d assets", len(ids))
}
