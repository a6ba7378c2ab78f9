package middleware

import "github.com/aretw0/teamtree/pkg/ports"

// Middleware allows wrapping a ChartStore to add behavior.
type Middleware func(ports.ChartStore) ports.ChartStore

// Chain applies middlewares so that the first one is the outermost.
func Chain(store ports.ChartStore, mws ...Middleware) ports.ChartStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
