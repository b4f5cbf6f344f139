package search

import (
	"log"

	"github.com/meilisearch/meilisearch-go"

	"github.com/veeda241/DAC-website/internal/entity"
)

// IndexService mirrors events and reports into Meilisearch so the landing
// pages can offer full-text search. Indexing is best effort: a failure is
// logged and never blocks the mutation that triggered it.
type IndexService interface {
	IndexEvent(e *entity.ClubEvent)
	RemoveEvent(id string)
	IndexReport(r *entity.ClubReport)
	RemoveReport(id string)
}

type meiliIndexService struct {
	client meilisearch.ServiceManager
}

// NewIndexService builds the Meilisearch-backed indexer. client may be nil,
// in which case every call is a no-op.
func NewIndexService(client meilisearch.ServiceManager) IndexService {
	s := &meiliIndexService{client: client}
	s.initIndexes()
	return s
}

func (s *meiliIndexService) initIndexes() {
	if s.client == nil {
		return
	}
	for index, attrs := range map[string][]string{
		"events":  {"title", "description", "location"},
		"reports": {"title", "description"},
	} {
		searchable := attrs
		if _, err := s.client.Index(index).UpdateSearchableAttributes(&searchable); err != nil {
			log.Printf("meilisearch: configure %s index: %v", index, err)
		}
	}
}

func (s *meiliIndexService) IndexEvent(e *entity.ClubEvent) {
	if s.client == nil || e == nil {
		return
	}
	doc := map[string]any{
		"id":          e.ID,
		"title":       e.Title,
		"date":        e.Date,
		"description": e.Description,
		"location":    e.Location,
	}
	if _, err := s.client.Index("events").AddDocuments([]map[string]any{doc}, primaryKey()); err != nil {
		log.Printf("meilisearch: index event %s: %v", e.ID, err)
	}
}

func (s *meiliIndexService) RemoveEvent(id string) {
	if s.client == nil {
		return
	}
	if _, err := s.client.Index("events").DeleteDocument(id); err != nil {
		log.Printf("meilisearch: remove event %s: %v", id, err)
	}
}

func (s *meiliIndexService) IndexReport(r *entity.ClubReport) {
	if s.client == nil || r == nil {
		return
	}
	doc := map[string]any{
		"id":          r.ID,
		"title":       r.Title,
		"date":        r.Date,
		"description": r.Description,
	}
	if _, err := s.client.Index("reports").AddDocuments([]map[string]any{doc}, primaryKey()); err != nil {
		log.Printf("meilisearch: index report %s: %v", r.ID, err)
	}
}

func (s *meiliIndexService) RemoveReport(id string) {
	if s.client == nil {
		return
	}
	if _, err := s.client.Index("reports").DeleteDocument(id); err != nil {
		log.Printf("meilisearch: remove report %s: %v", id, err)
	}
}

func primaryKey() *string {
	pk := "id"
	return &pk
}
