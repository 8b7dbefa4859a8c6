package models

import "go.mongodb.org/mongo-driver/bson"

// Booking documents are stored as submitted: the server reads userEmail for
// the ownership check and stamps createdAt at insert; everything else in the
// payload (vehicle reference, dates, pricing) passes through verbatim.
type Booking = bson.M
