package service

import (
	"context"
	"fmt"
)

// search.list is the expensive call (100 quota units each), so the pool is
// widened with few queries and few pages, then refined with cheap calls.
const (
	maxSeedQueries = 6
	pagesPerQuery  = 2
	searchPageSize = 50
	maxCandidates  = 380
)

// buildCandidatePool runs the seed queries against channel search and
// deduplicates results into an ordered candidate ID list. Both the
// pagination loop and the query loop stop as soon as the pool hits
// maxCandidates. A failed search aborts the run: search cost is not
// recoverable mid-run without risking duplicate spend.
func (s *RadarService) buildCandidatePool(ctx context.Context, region, lang, category string) ([]string, error) {
	seeds := LookupCategory(category)
	queries := seeds.Queries
	if len(queries) > maxSeedQueries {
		queries = queries[:maxSeedQueries]
	}

	seen := make(map[string]struct{})
	var candidates []string

	for _, q := range queries {
		pageToken := ""
		for page := 0; page < pagesPerQuery; page++ {
			res, err := s.yt.SearchChannels(ctx, q, region, lang, pageToken, searchPageSize)
			if err != nil {
				return nil, fmt.Errorf("search channels %q: %w", q, err)
			}

			for _, id := range res.ChannelIDs {
				if id == "" {
					continue
				}
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				candidates = append(candidates, id)
			}

			pageToken = res.NextPageToken
			if pageToken == "" || len(candidates) >= maxCandidates {
				break
			}
		}
		if len(candidates) >= maxCandidates {
			break
		}
	}

	return candidates, nil
}
