// Package parsecache keeps recently parsed documents keyed by the hash of their source.
//
// Cached documents are shared between callers and must not be modified.
// Sources that fail to parse are not cached.
package parsecache

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/atomic"

	"github.com/elbow-jason/graphql-parser/pkg/astparser"
	"github.com/elbow-jason/graphql-parser/pkg/pool"
	"github.com/elbow-jason/graphql-parser/pkg/query"
	"github.com/elbow-jason/graphql-parser/pkg/schema"
)

const DefaultSize = 1024

type entry struct {
	source   []byte
	document interface{}
}

type Cache struct {
	parser  *astparser.Parser
	queries *lru.Cache
	schemas *lru.Cache

	hits   *atomic.Int64
	misses *atomic.Int64
}

// Stats counts lookups since the cache was created, a failed parse counts as a miss
type Stats struct {
	Hits   int64
	Misses int64
}

// New creates a cache holding up to size query and size schema documents, opts configure the parser
func New(size int, opts ...astparser.Option) (*Cache, error) {
	queries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	schemas, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		parser:  astparser.NewParser(opts...),
		queries: queries,
		schemas: schemas,
		hits:    atomic.NewInt64(0),
		misses:  atomic.NewInt64(0),
	}, nil
}

// Query returns the parsed executable document for src.
// src is copied, the caller may reuse it afterwards.
func (c *Cache) Query(src []byte) (*query.Document, error) {
	key := pool.Hash64.Sum64(src)
	if document, ok := c.lookup(c.queries, key, src); ok {
		return document.(*query.Document), nil
	}

	source := bytes.Clone(src)
	document, err := c.parser.ParseQuery(source)
	if err != nil {
		return nil, err
	}
	c.queries.Add(key, entry{source: source, document: document})
	return document, nil
}

// Schema returns the parsed type system document for src, see Query
func (c *Cache) Schema(src []byte) (*schema.Document, error) {
	key := pool.Hash64.Sum64(src)
	if document, ok := c.lookup(c.schemas, key, src); ok {
		return document.(*schema.Document), nil
	}

	source := bytes.Clone(src)
	document, err := c.parser.ParseSchema(source)
	if err != nil {
		return nil, err
	}
	c.schemas.Add(key, entry{source: source, document: document})
	return document, nil
}

// Len is the number of cached query and schema documents
func (c *Cache) Len() int {
	return c.queries.Len() + c.schemas.Len()
}

// Purge drops every cached document, Stats are kept
func (c *Cache) Purge() {
	c.queries.Purge()
	c.schemas.Purge()
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// lookup guards against hash collisions by comparing the cached source
func (c *Cache) lookup(cache *lru.Cache, key uint64, src []byte) (interface{}, bool) {
	cached, ok := cache.Get(key)
	if !ok {
		c.misses.Inc()
		return nil, false
	}
	e := cached.(entry)
	if !bytes.Equal(e.source, src) {
		c.misses.Inc()
		return nil, false
	}
	c.hits.Inc()
	return e.document, true
}
