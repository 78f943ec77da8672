// Package delivery provides the Delivery aggregate: the physical fulfillment
// record of an order. It snapshots participants and line items at creation,
// drives the assigned -> picked_up -> in_transit -> delivered state machine
// with set-once milestone timestamps, captures proof of delivery at
// completion, and keeps an append-only issue list that stays writable even
// after the delivery reaches a terminal status.
package delivery
