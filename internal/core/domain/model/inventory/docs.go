// Package inventory holds the warehouse side dataset: storage locations,
// how many units of a product sit at each location, and a journal of stock
// movements. None of it is reconciled with picking.
package inventory
