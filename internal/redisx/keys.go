package redisx

import (
	"fmt"
	"time"
)

const (
	// State lokal client: stockfront:local:{storage_key} -> raw JSON
	KeyLocal = "stockfront:local:%s"
)

// TTLLocal: keranjang yang tidak disentuh selama ini dianggap basi.
var TTLLocal = 30 * 24 * time.Hour

func LocalKey(key string) string { return fmt.Sprintf(KeyLocal, key) }
