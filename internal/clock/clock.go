// internal/clock/clock.go
package clock

import "time"

// Clock は現在時刻の取得を抽象化します。
// 復習間隔やストリーク計算をテストで決定的にするために注入する。
type Clock interface {
	Now() time.Time
}

// SystemClock は time.Now をそのまま返す本番用実装です
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock はテスト用に固定時刻を返します
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}
