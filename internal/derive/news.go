package derive

import (
	"sort"
	"strings"

	"github.com/lucstrike/game-day-radar-seeker/internal/domain/news"
	"github.com/lucstrike/game-day-radar-seeker/internal/domain/sports"
)

// DefaultTrendingLimit is the trending-news cap used by the news view.
const DefaultTrendingLimit = 10

// AllCategories selects every category in FilterNewsByCategory.
const AllCategories = "all"

func filterNews(list []news.Article, keep func(news.Article) bool) []news.Article {
	out := make([]news.Article, 0, len(list))
	for _, a := range list {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func cloneNews(list []news.Article) []news.Article {
	return append(make([]news.Article, 0, len(list)), list...)
}

// FilterNewsByQuery matches query against title, summary and source.
func FilterNewsByQuery(list []news.Article, query string) []news.Article {
	q := strings.ToLower(query)
	if q == "" {
		return cloneNews(list)
	}
	return filterNews(list, func(a news.Article) bool {
		return containsFold(a.Title, q) || containsFold(a.Summary, q) || containsFold(a.Source, q)
	})
}

// FilterNewsBySport keeps articles whose sport equals sport exactly. Only
// sports.All is the identity.
func FilterNewsBySport(list []news.Article, sport sports.Type) []news.Article {
	if sport == sports.All {
		return cloneNews(list)
	}
	return filterNews(list, func(a news.Article) bool { return a.Sport == sport })
}

// FilterNewsByCategory keeps articles of category. AllCategories (or empty) is the identity.
func FilterNewsByCategory(list []news.Article, category string) []news.Article {
	if category == AllCategories || category == "" {
		return cloneNews(list)
	}
	return filterNews(list, func(a news.Article) bool { return a.Category == category })
}

// TrendingNews orders by views descending, ties keeping input order, and truncates to limit.
func TrendingNews(list []news.Article, limit int) []news.Article {
	out := cloneNews(list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	return truncate(out, limit)
}

// RecentNews orders by publication time, newest first.
func RecentNews(list []news.Article) []news.Article {
	out := cloneNews(list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out
}

// BookmarkedNews keeps articles whose id is in ids, in list order.
func BookmarkedNews(list []news.Article, ids []string) []news.Article {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return filterNews(list, func(a news.Article) bool {
		_, ok := set[a.ID]
		return ok
	})
}
