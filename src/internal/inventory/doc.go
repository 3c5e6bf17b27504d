// Package inventory is an in-memory mobile store used by the bundled backend.
//
// It implements the record semantics behind the /api/mobiles endpoints:
// records are kept ordered by id, ids are unique, and an id of 0 on insert
// means "assign the next free id". A store can be seeded from a TOML file:
//
//	[[mobile]]
//	id = 1
//	brand = "Acme"
//	model = "X1"
//	price = 199.99
//	color = "black"
package inventory
