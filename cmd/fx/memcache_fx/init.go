package memcache_fx

import (
	"go.uber.org/fx"

	mem "fanloft/pkg/memcache"
)

var Module = fx.Provide(
	provideDocumentStore)

func provideDocumentStore() mem.DocumentStore {
	return mem.NewDocuments()
}
