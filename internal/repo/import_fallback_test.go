package repo

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestTransactionsUnsupported(t *testing.T) {
	standalone := mongo.CommandError{
		Code:    20,
		Name:    "IllegalOperation",
		Message: "Transaction numbers are only allowed on a replica set member or mongos",
	}
	if !transactionsUnsupported(standalone) {
		t.Fatal("standalone IllegalOperation must select the fallback")
	}
	if !transactionsUnsupported(fmt.Errorf("run txn: %w", standalone)) {
		t.Fatal("wrapped standalone error must select the fallback")
	}

	// Anything else — a commit that may already have applied, a network
	// drop, a different IllegalOperation — must NOT re-run the writes:
	// a second pass would decrement stock twice for one request.
	for _, err := range []error{
		mongo.CommandError{Code: 50, Name: "MaxTimeMSExpired", Message: "operation exceeded time limit",
			Labels: []string{"UnknownTransactionCommitResult"}},
		mongo.CommandError{Code: 20, Name: "IllegalOperation", Message: "cannot run command in multi document transaction"},
		errors.New("connection(localhost:27017) socket was unexpectedly closed"),
	} {
		if transactionsUnsupported(err) {
			t.Errorf("error %v must not select the fallback", err)
		}
	}
}
