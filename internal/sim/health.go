package sim

import "fmt"

// Health is the player's hit counter, bounded to [0, max].
type Health struct {
	value int
	max   int
}

// NewHealth returns a full health pool.
func NewHealth(max int) Health {
	if max < 0 {
		max = 0
	}
	return Health{value: max, max: max}
}

// Value returns the remaining health.
func (h Health) Value() int {
	return h.value
}

// Max returns the starting health.
func (h Health) Max() int {
	return h.max
}

// Empty reports whether health is exhausted.
func (h Health) Empty() bool {
	return h.value == 0
}

// Damage removes one point. It returns false when health was already 0.
func (h *Health) Damage() bool {
	if h.value == 0 {
		return false
	}
	h.value--
	return true
}

// Deplete drops health to 0. It returns false when it was already 0.
func (h *Health) Deplete() bool {
	if h.value == 0 {
		return false
	}
	h.value = 0
	return true
}

// Text is the HUD string mirroring the counter.
func (h Health) Text() string {
	return HealthText(h.value)
}

// HealthText formats a health value for the HUD.
func HealthText(v int) string {
	return fmt.Sprintf("Health: %d", v)
}
