package services

import (
	"strconv"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// starCount is one bucket of the rating histogram
type starCount struct {
	Rating int
	Count  int
}

// averageRating returns total/count rounded half-up to one decimal, "0.0" when there are no reviews
func averageRating(total, count int) string {
	if count == 0 {
		return "0.0"
	}
	avg := decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(count)))
	return avg.Round(1).StringFixed(1)
}

// menuReviewStats reads the per-star review counts of a catalog item
func menuReviewStats(tx *gorm.DB, mealID string) ([]starCount, error) {
	var buckets []starCount
	err := tx.Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("owner_type = ? AND owner_id = ?", models.OwnerMenu, mealID).
		Group("rating").
		Order("rating").
		Scan(&buckets).Error
	return buckets, err
}

// summarize folds histogram buckets into the rating aggregate and the histogram keyed by star
func summarize(buckets []starCount) (models.Rating, map[string]int) {
	histogram := make(map[string]int, len(buckets))
	var count, total int
	for _, b := range buckets {
		histogram[strconv.Itoa(b.Rating)] = b.Count
		count += b.Count
		total += b.Rating * b.Count
	}
	return models.Rating{
		ReviewCount:   count,
		TotalRating:   total,
		AverageRating: averageRating(total, count),
	}, histogram
}

// recomputeRating stores the rating aggregate of a catalog item.
// The histogram is only rewritten when withHistogram is set.
func recomputeRating(tx *gorm.DB, mealID string, withHistogram bool) (models.Rating, error) {
	buckets, err := menuReviewStats(tx, mealID)
	if err != nil {
		return models.Rating{}, err
	}
	rating, histogram := summarize(buckets)

	columns := map[string]interface{}{
		"rating_review_count":   rating.ReviewCount,
		"rating_total_rating":   rating.TotalRating,
		"rating_average_rating": rating.AverageRating,
	}
	if withHistogram {
		columns["rating_count"] = datatypes.NewJSONType(histogram)
	}
	err = tx.Model(&models.MenuItem{}).Where("id = ?", mealID).Updates(columns).Error
	return rating, err
}
