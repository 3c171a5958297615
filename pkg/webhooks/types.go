// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// PurchaseEvent is sent by the storefront once an order for a new tenant is paid.
type PurchaseEvent struct {
	OrderID   string   `json:"order_id"`
	Subdomain string   `json:"subdomain"`
	PlanID    string   `json:"plan_id"`
	Modules   []string `json:"modules"`
}

// orderRequestPrefix namespaces order ids among provisioning request ids.
const orderRequestPrefix = "order:"

const maxOrderIDLength = 120
