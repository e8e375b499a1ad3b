package handlers

import (
	"sync"

	"gorm.io/gorm"
)

// existsByID performs a single existence lookup for one referenced record.
func existsByID(db *gorm.DB, model any, id string) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// missingRefs checks every identifier in ids against the given store and
// returns, preserving input order, those that do not resolve to an existing
// record. The lookups are independent reads and are issued concurrently.
func missingRefs(db *gorm.DB, model any, ids []string) ([]string, error) {
	found := make([]bool, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			found[i], errs[i] = existsByID(db, model, id)
		}(i, id)
	}
	wg.Wait()

	var missing []string
	for i := range ids {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if !found[i] {
			missing = append(missing, ids[i])
		}
	}
	return missing, nil
}
