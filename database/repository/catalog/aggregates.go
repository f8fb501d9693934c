package catalogRepo

import (
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetAvailable runs the whole availability computation inside MongoDB: a
// $lookup joins the date's bookings onto each option by treatment name, and
// $setDifference subtracts the booked slot labels from the option's slots.
// $setDifference keeps the first array's order, so untaken slots come back in
// their original relative order. The date match is exact equality, never a
// partial or regex match. Only {name, price, slots} is projected.
func (r *MongoCatalogRepo) GetAvailable(date string) ([]models.AvailableOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{
			"$lookup": bson.M{
				"from":         bookingsCollection,
				"localField":   "name",
				"foreignField": "treatment",
				"pipeline": bson.A{
					bson.M{
						"$match": bson.M{
							"$expr": bson.M{
								"$eq": bson.A{"$appointmentDate", date},
							},
						},
					},
				},
				"as": "booked",
			},
		},
		bson.M{
			"$project": bson.M{
				"name":  1,
				"price": 1,
				"slots": 1,
				"booked": bson.M{
					"$map": bson.M{
						"input": "$booked",
						"as":    "book",
						"in":    "$$book.slot",
					},
				},
			},
		},
		bson.M{
			"$project": bson.M{
				"name":  1,
				"price": 1,
				"slots": bson.M{
					"$setDifference": bson.A{"$slots", "$booked"},
				},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability for date %q: %w", date, err)
	}
	defer cursor.Close(ctx)

	var available []models.AvailableOption
	for cursor.Next(ctx) {
		var o models.AvailableOption
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode available option: %w", err)
		}
		available = append(available, o)
	}
	return available, nil
}
