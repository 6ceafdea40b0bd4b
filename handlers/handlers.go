// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"linklet-server/db"
	"linklet-server/plans"
	"linklet-server/subscriptions"
)

// planCatalog is the catalog every handler consults. Constructed once and
// replaceable so tests can substitute alternate plan tables.
var planCatalog = plans.Default()

func SetCatalog(catalog plans.Catalog) {
	planCatalog = catalog
}

func subscriptionService() *subscriptions.Service {
	return subscriptions.NewService(db.Conn, planCatalog)
}
