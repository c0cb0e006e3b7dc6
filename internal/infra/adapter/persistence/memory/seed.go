package memory

import (
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/observability/metrics"
	"astrobuzz/internal/repository"
)

func strPtr(s string) *string { return &s }

// seed populates the demo content set: the six editorial categories, a
// handful of actors with static natal signs, and articles wired to both.
// Two of the articles share the same actor pair so the relationship
// inference has something to surface out of the box.
func (s *Store) seed() {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range []repository.CreateCategoryInput{
		{Name: "Top", Slug: "top", Color: "hsl(267, 45%, 51%)", Icon: "star"},
		{Name: "Entertainment", Slug: "entertainment", Color: "hsl(35, 91%, 48%)", Icon: "film"},
		{Name: "Celebrity", Slug: "celebrity", Color: "hsl(0, 84%, 60%)", Icon: "users"},
		{Name: "Lifestyle", Slug: "lifestyle", Color: "hsl(325, 78%, 56%)", Icon: "heart"},
		{Name: "World", Slug: "world", Color: "hsl(158, 64%, 52%)", Icon: "globe"},
		{Name: "Tech", Slug: "tech", Color: "hsl(195, 91%, 42%)", Icon: "cpu"},
	} {
		s.insertCategory(c)
	}

	for _, a := range []repository.CreateActorInput{
		{
			Name: "Taylor Swift", Slug: "taylor-swift", Category: "music",
			SunSign: strPtr("Sagittarius"), MoonSign: strPtr("Cancer"), RisingSign: strPtr("Scorpio"),
			ProfileImage: strPtr("https://via.placeholder.com/128"),
		},
		{
			Name: "Elon Musk", Slug: "elon-musk", Category: "tech",
			SunSign: strPtr("Cancer"), MoonSign: strPtr("Virgo"), RisingSign: strPtr("Leo"),
			ProfileImage: strPtr("https://via.placeholder.com/128"),
		},
		{
			Name: "Beyoncé", Slug: "beyonce", Category: "music",
			SunSign: strPtr("Virgo"), MoonSign: strPtr("Scorpio"), RisingSign: strPtr("Libra"),
			ProfileImage: strPtr("https://via.placeholder.com/128"),
		},
	} {
		s.insertActor(a)
	}

	base := s.now()
	seedArticles := []struct {
		article entity.Article
		age     time.Duration // how far before base the article was published
	}{
		{
			age: 6 * time.Hour,
			article: entity.Article{
				Title:      "Taylor Swift Announces Surprise Album During Mercury Retrograde",
				Summary:    "The pop superstar drops hints about her upcoming release, coinciding with powerful astrological transits...",
				Content:    "Full article content would go here...",
				CategoryID: 3, // Celebrity
				AstroAnalysis: "This announcement comes during a powerful Mercury retrograde period, highlighting themes of " +
					"revisiting past work and unexpected revelations.",
				AstroGlyphs: []entity.AstroGlyph{
					{Planet: "mercury", Color: "hsl(210, 100%, 50%)", Symbol: "Rx"},
					{Planet: "venus", Color: "hsl(45, 100%, 50%)"},
					{Planet: "mars", Color: "hsl(0, 100%, 50%)"},
				},
				Hashtags:    []string{"#TaylorSwift", "#mercuryretrograde", "#newmusic"},
				ActorIDs:    []int64{1},
				LikeCount:   247,
				ShareCount:  89,
				IsCelebrity: true,
			},
		},
		{
			age: 12 * time.Hour,
			article: entity.Article{
				Title:      "Elon Musk Launches New Venture Under Powerful Jupiter Transit",
				Summary:    "SpaceX founder announces revolutionary project as Jupiter forms beneficial aspects to his natal chart...",
				Content:    "Full article content would go here...",
				CategoryID: 6, // Tech
				AstroAnalysis: "Musk's announcement coincides with Jupiter transiting his 10th house of career and public " +
					"image, suggesting significant impact on his legacy.",
				AstroGlyphs: []entity.AstroGlyph{
					{Planet: "jupiter", Color: "hsl(35, 100%, 50%)", Symbol: "!"},
					{Planet: "saturn", Color: "hsl(45, 80%, 40%)"},
				},
				Hashtags:    []string{"#ElonMusk", "#Jupiter", "#innovation"},
				ActorIDs:    []int64{2},
				LikeCount:   189,
				ShareCount:  67,
				IsCelebrity: true,
			},
		},
		{
			age: 24 * time.Hour,
			article: entity.Article{
				Title:      "Global Climate Summit Begins During Powerful Eclipse Season",
				Summary:    "World leaders gather as lunar eclipse creates intense transformational energy for environmental policy...",
				Content:    "Full article content would go here...",
				CategoryID: 5, // World
				AstroAnalysis: "The lunar eclipse in Scorpio brings intense transformational energy to global environmental " +
					"discussions.",
				AstroGlyphs: []entity.AstroGlyph{
					{Planet: "moon", Color: "hsl(210, 15%, 40%)", Symbol: "!"},
					{Planet: "sun", Color: "hsl(45, 100%, 60%)"},
					{Planet: "pluto", Color: "hsl(260, 70%, 40%)"},
				},
				Hashtags:   []string{"#eclipse", "#climate", "#transformation", "#globalchange"},
				ActorIDs:   []int64{},
				LikeCount:  324,
				ShareCount: 143,
			},
		},
		{
			age: 36 * time.Hour,
			article: entity.Article{
				Title:      "Venus in Gemini Brings Social Renaissance to Dating Apps",
				Summary:    "Astrologers report surge in romantic connections as Venus enters communicative Gemini...",
				Content:    "Full article content would go here...",
				CategoryID: 4, // Lifestyle
				AstroAnalysis: "Venus's transit through Gemini encourages communication, curiosity, and intellectual " +
					"connection in relationships.",
				AstroGlyphs: []entity.AstroGlyph{
					{Planet: "venus", Color: "hsl(325, 100%, 60%)"},
					{Planet: "mercury", Color: "hsl(200, 100%, 50%)"},
				},
				Hashtags:   []string{"#VenusInGemini", "#dating", "#relationships"},
				ActorIDs:   []int64{},
				LikeCount:  156,
				ShareCount: 45,
			},
		},
		{
			age: 48 * time.Hour,
			article: entity.Article{
				Title:      "Taylor and Beyoncé Duet Rumors Swirl as Venus Meets Jupiter",
				Summary:    "Industry insiders hint at a historic collaboration between the two music icons...",
				Content:    "Full article content would go here...",
				CategoryID: 2, // Entertainment
				AstroAnalysis: "Venus conjunct Jupiter traditionally marks moments of creative abundance, a fitting sky " +
					"for two chart-topping careers to align.",
				AstroGlyphs: []entity.AstroGlyph{
					{Planet: "venus", Color: "hsl(325, 100%, 60%)"},
					{Planet: "jupiter", Color: "hsl(35, 100%, 50%)"},
				},
				Hashtags:    []string{"#TaylorSwift", "#Beyonce", "#duet"},
				ActorIDs:    []int64{1, 3},
				LikeCount:   412,
				ShareCount:  201,
				IsCelebrity: true,
			},
		},
		{
			age: 72 * time.Hour,
			article: entity.Article{
				Title:      "Award Night Astrology: Taylor and Beyoncé Steal the Scorpio Moon",
				Summary:    "Both stars shone under an intense full moon, and their charts tell the story...",
				Content:    "Full article content would go here...",
				CategoryID: 3, // Celebrity
				AstroAnalysis: "A Scorpio full moon favors dramatic public moments; both natal charts catch the lunation " +
					"across their angles.",
				AstroGlyphs: []entity.AstroGlyph{
					{Planet: "moon", Color: "hsl(210, 15%, 40%)"},
				},
				Hashtags:    []string{"#awards", "#TaylorSwift", "#Beyonce"},
				ActorIDs:    []int64{1, 3},
				LikeCount:   278,
				ShareCount:  96,
				IsCelebrity: true,
			},
		},
	}

	for _, seed := range seedArticles {
		s.articleID++
		art := seed.article
		art.ID = s.articleID
		art.PublishedAt = base.Add(-seed.age)
		s.articles[art.ID] = &art
	}

	metrics.RecordArticlesSeeded("fixtures", len(seedArticles))
	metrics.RecordSeedDuration(time.Since(start))
}
