package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

// ErrNotFound is returned when the index has no entry matching the request.
var ErrNotFound = errors.New("searchindex: not found")

// Client wraps the official Elasticsearch client with the two operations the
// note domain needs: free-form search and deletion by note id. The index is
// populated out-of-band; this service never writes documents.
type Client struct {
	es *elasticsearch.Client
}

func New(address string) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  []string{address},
		MaxRetries: 3,
	})
	if err != nil {
		return nil, err
	}

	return &Client{es: es}, nil
}

// Hit is a single search hit. Only the document id is consumed; the
// authoritative row is re-fetched from the database by the caller.
type Hit struct {
	Source struct {
		Id int64 `json:"id"`
	} `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Hits []Hit `json:"hits"`
	} `json:"hits"`
}

// SearchNotes runs {query: {<searchType>: <query>}} against the index.
// searchType is any query clause Elasticsearch supports (match, term,
// query_string, ...). A missing index is treated as zero hits.
func (c *Client) SearchNotes(ctx context.Context, index, searchType string, query map[string]interface{}) ([]Hit, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			searchType: query,
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("searchindex: search failed with status %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	return parsed.Hits.Hits, nil
}

// DeleteNoteByID removes every index entry whose id field matches noteId.
func (c *Client) DeleteNoteByID(ctx context.Context, index string, noteId int64) error {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{"id": noteId},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	res, err := c.es.DeleteByQuery(
		[]string{index},
		&buf,
		c.es.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return ErrNotFound
	}
	if res.IsError() {
		return fmt.Errorf("searchindex: delete failed with status %s", res.Status())
	}

	return nil
}

// Health pings cluster health, used by the pre-run checks.
func (c *Client) Health(ctx context.Context) error {
	res, err := c.es.Cluster.Health(c.es.Cluster.Health.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("searchindex: cluster health returned %s", res.Status())
	}

	return nil
}
