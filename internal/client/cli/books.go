package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

const defaultRecommendations = 10

// Books lists the catalogue, optionally filtered by a search phrase.
func (a *App) Books(ctx context.Context, args []string) error {
	books, err := a.api.GetBooks(ctx, models.BookFilter{Search: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(a.out, "No books found.")
		return nil
	}
	for _, b := range books {
		fmt.Fprintf(a.out, "  [%d] %s by %s (%.1f, %d ratings)\n", b.ID, clean(b.Title), clean(b.Author), b.Rating, b.TotalRatings)
	}
	return nil
}

func (a *App) Rate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("rate <bookId> <1-5>")
	}
	bookID, err := parseID(args[0])
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return usageError("rate <bookId> <1-5>")
	}

	res, err := a.api.RateBook(ctx, bookID, rating)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))

	v := float64(rating)
	a.recordInteraction(ctx, bookID, models.EventRate, &v)
	return nil
}

// Review asks for a rating and a multi-line review text.
func (a *App) Review(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 1, "review <bookId>")
	if err != nil {
		return err
	}
	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil {
		return fmt.Errorf("rating must be a number, got %q", ratingText)
	}
	text, err := getMultiline(a.reader, "Review", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.SubmitBookReview(ctx, ids[0], models.BookReviewSubmission{Rating: rating, ReviewText: text})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))
	a.recordInteraction(ctx, ids[0], models.EventReview, nil)
	return nil
}

// recordInteraction feeds the recommender. Failures are logged only; the
// user's action already succeeded.
func (a *App) recordInteraction(ctx context.Context, bookID int64, event models.EventType, value *float64) {
	_, err := a.api.RecordInteraction(ctx, models.Interaction{BookID: bookID, EventType: event, EventValue: value})
	if err != nil {
		a.log.Warn(ctx, "record interaction failed", "book_id", bookID, "event", event, "error", err)
	}
}

func (a *App) Genres(ctx context.Context) error {
	res, err := a.api.GetAllGenres(ctx)
	if err != nil {
		return err
	}
	for _, g := range res.Genres {
		fav := ""
		if g.IsFavorited {
			fav = " *"
		}
		fmt.Fprintf(a.out, "  [%d] %s (%d books)%s\n", g.GenreID, clean(g.GenreName), g.BookCount, fav)
	}
	return nil
}

func (a *App) Favorite(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 1, "favorite <genreId>")
	if err != nil {
		return err
	}
	res, err := a.api.FavoriteGenre(ctx, ids[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))
	return nil
}

func (a *App) Recommend(ctx context.Context, args []string) error {
	n := defaultRecommendations
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return usageError("recommend [count]")
		}
		n = v
	}

	res, err := a.api.GetRecommendations(ctx, n)
	if err != nil {
		return err
	}
	if res.Source == models.SourceFallback && !res.HasFavoriteGenres {
		fmt.Fprintln(a.out, "Tip: favorite a few genres ('genres', 'favorite <id>') for personal picks.")
	}
	for _, r := range res.Recommendations {
		fmt.Fprintf(a.out, "  [%d] %s by %s (%.1f) - %s\n", r.BookID, clean(r.Title), clean(r.Authors), r.AverageRating, clean(r.Reason))
	}
	return nil
}
