package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ParseOrder converts a decoded JSON payload into a list of goal IDs.
//
// The payload must be a list. Entries that are not positive integers are
// skipped, repeated IDs only count at their first position.
func ParseOrder(payload any) ([]uint, error) {
	entries, ok := payload.([]any)
	if !ok {
		return nil, ErrInvalidInput
	}

	seen := make(map[uint]bool, len(entries))
	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		id, ok := orderID(entry)
		if !ok || seen[id] {
			continue
		}

		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, ErrValidation
	}

	return ids, nil
}

// orderID returns the ID for one entry of an order payload.
func orderID(entry any) (uint, bool) {
	switch v := entry.(type) {
	case float64:
		if v < 1 || v != math.Trunc(v) || v > math.MaxUint32 {
			return 0, false
		}
		return uint(v), true
	case json.Number:
		return parseOrderID(v.String())
	case string:
		return parseOrderID(strings.TrimSpace(v))
	case int:
		if v < 1 {
			return 0, false
		}
		return uint(v), true
	case uint:
		return v, v > 0
	}

	return 0, false
}

func parseOrderID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

// ReorderGoals sets the priority of the goals to their 1-based position in ids.
//
// IDs that do not belong to an existing goal are dropped before numbering.
// Goals not in ids keep their priority. All updates happen in one transaction.
func ReorderGoals(db *gorm.DB, ids []uint) ([]Goal, error) {
	if len(ids) == 0 {
		return nil, ErrValidation
	}

	var goals []Goal
	err := transaction(db, func(tx *gorm.DB) error {
		var existing []uint
		err := tx.Model(&Goal{}).Where("id IN ?", ids).Pluck("id", &existing).Error
		if err != nil {
			return err
		}

		known := make(map[uint]bool, len(existing))
		for _, id := range existing {
			known[id] = true
		}

		priority := 0
		for _, id := range ids {
			if !known[id] {
				continue
			}
			delete(known, id)

			priority++
			err = tx.Model(&Goal{DefaultModel: DefaultModel{ID: id}}).UpdateColumn("priority", priority).Error
			if err != nil {
				return err
			}
		}

		if priority == 0 {
			return ErrValidation
		}

		return OrderedGoals(tx).Find(&goals).Error
	})
	if err != nil {
		return nil, err
	}

	return goals, nil
}
