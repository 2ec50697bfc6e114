// internal/defs/loot_tables.go
package defs

import "go-cyber-shooter/internal/component"

// LootEntry представляет одну запись в таблице выпадения.
// Kind - тип бонуса, а Weight - его "вес" или относительный шанс выпадения.
type LootEntry struct {
	Kind   component.PowerUpKind `json:"kind"`
	Weight int                   `json:"weight"`
}

// PowerUpLoot описывает выпадение из убитого врага: здоровье и оружие поровну.
var PowerUpLoot = []LootEntry{
	{Kind: component.PowerUpHealth, Weight: 1},
	{Kind: component.PowerUpWeapon, Weight: 1},
}
