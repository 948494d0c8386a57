// Package shard routes tracks contexts to worker shards. The engine
// core is single-threaded; a host that wants multithreading shards by
// context, and crossing a context within a tick is not supported.
// The router maps a context id to one of N worker shards with
// rendezvous hashing.
package shard

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-rendezvous"
)

// Router assigns a Tracks Context id to a stable shard index using
// rendezvous (highest random weight) hashing: adding or removing a
// shard only reshuffles the ids that hashed to that shard, unlike a
// plain id % n router.
type Router struct {
	nodes []string
	rdv   *rendezvous.Rendezvous
}

// hash64 adapts xxhash's Sum64String to the Hasher signature
// go-rendezvous expects.
func hash64(s string) uint64 { return xxhash.Sum64String(s) }

// New builds a Router over count equally-weighted shards, named
// "shard-0".."shard-{count-1}".
func New(count int) *Router {
	if count < 1 {
		count = 1
	}
	nodes := make([]string, count)
	for i := range nodes {
		nodes[i] = shardName(i)
	}
	return &Router{nodes: nodes, rdv: rendezvous.New(nodes, hash64)}
}

// ShardFor resolves a Tracks Context id to its assigned shard name.
func (r *Router) ShardFor(contextID string) string {
	return r.rdv.Lookup(contextID)
}

// ShardIndexFor resolves a Tracks Context id to a shard index in
// [0, count), for callers that index into a worker pool slice rather
// than a name-keyed map.
func (r *Router) ShardIndexFor(contextID string) int {
	name := r.ShardFor(contextID)
	for i, n := range r.nodes {
		if n == name {
			return i
		}
	}
	return 0
}

// Count reports the number of shards the Router was built with.
func (r *Router) Count() int { return len(r.nodes) }

func shardName(i int) string {
	return "shard-" + strconv.Itoa(i)
}
