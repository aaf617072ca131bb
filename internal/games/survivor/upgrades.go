package survivor

import "math/rand"

// UpgradeKind is a permanent stat-boost category.
type UpgradeKind int

const (
	UpgradeSpeed UpgradeKind = iota
	UpgradeBulletSpeed
	UpgradeExtraDirections
	upgradeKindCount
)

// OptionCount is the number of upgrade options offered per level.
const OptionCount = 3

// UpgradeInfo holds display text for an upgrade kind.
type UpgradeInfo struct {
	Kind        UpgradeKind
	Name        string
	Description string
}

var upgradeCatalog = [upgradeKindCount]UpgradeInfo{
	UpgradeSpeed:           {UpgradeSpeed, "Speed Boost", "+10% movement speed"},
	UpgradeBulletSpeed:     {UpgradeBulletSpeed, "Bullet Speed", "+20% bullet velocity"},
	UpgradeExtraDirections: {UpgradeExtraDirections, "Extra Bullets", "Adds 4 diagonal directions"},
}

// Info returns the display text for the kind.
func (k UpgradeKind) Info() UpgradeInfo {
	if k < 0 || k >= upgradeKindCount {
		return UpgradeInfo{Kind: k, Name: "Unknown"}
	}
	return upgradeCatalog[k]
}

// String returns the upgrade's display name.
func (k UpgradeKind) String() string {
	return k.Info().Name
}

// AvailableUpgrades returns every upgrade kind that can be offered.
func AvailableUpgrades() []UpgradeKind {
	kinds := make([]UpgradeKind, 0, upgradeKindCount)
	for k := UpgradeKind(0); k < upgradeKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Upgrades counts how many times each kind was acquired in the current run.
type Upgrades [upgradeKindCount]int

// Count returns the number of times kind was acquired.
func (u Upgrades) Count(k UpgradeKind) int {
	if k < 0 || k >= upgradeKindCount {
		return 0
	}
	return u[k]
}

// Total returns the number of upgrades acquired.
func (u Upgrades) Total() int {
	n := 0
	for _, c := range u {
		n += c
	}
	return n
}

// offerUpgrades shuffles the available kinds and takes the first n.
// Options are distinct as long as the pool has no repeated kinds.
func offerUpgrades(rng *rand.Rand, pool []UpgradeKind, n int) []UpgradeKind {
	shuffled := make([]UpgradeKind, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(n, len(shuffled))]
}
