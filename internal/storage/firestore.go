package storage

import (
	"context"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-faster/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore layout: one document per storefront profile, one field per key.
const (
	FirestoreCollection     = "storefront_state"
	DefaultFirestoreTimeout = 10 * time.Second
)

// FirestoreStore keeps values in a Cloud Firestore document so a shopper's
// cart and session follow them across machines.
type FirestoreStore struct {
	client  *firestore.Client
	profile string
	timeout time.Duration
}

// NewFirestoreClient opens a Firestore client. credentialsFile may be empty to
// use application default credentials.
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, errors.New("firestore project id is empty")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create firestore client")
	}
	return client, nil
}

// NewFirestoreStore stores values in document profile of FirestoreCollection.
func NewFirestoreStore(client *firestore.Client, profile string) *FirestoreStore {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		profile = "default"
	}
	return &FirestoreStore{
		client:  client,
		profile: profile,
		timeout: DefaultFirestoreTimeout,
	}
}

// SetTimeout sets the timeout applied to every Firestore call
func (f *FirestoreStore) SetTimeout(timeout time.Duration) {
	f.timeout = timeout
}

func (f *FirestoreStore) doc() (*firestore.DocumentRef, error) {
	if f == nil || f.client == nil {
		return nil, errors.New("firestore store: client is nil")
	}
	return f.client.Collection(FirestoreCollection).Doc(f.profile), nil
}

func (f *FirestoreStore) callContext() (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), f.timeout)
}

// Get returns the value stored under key.
func (f *FirestoreStore) Get(key string) (string, bool, error) {
	doc, err := f.doc()
	if err != nil {
		return "", false, err
	}
	ctx, cancel := f.callContext()
	defer cancel()

	snap, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		log.Printf("[storage] firestore get %s FAILED err=%v", key, err)
		return "", false, errors.Wrapf(err, "firestore get %s", key)
	}

	raw, ok := snap.Data()[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, errors.Errorf("firestore field %s is %T, not a string", key, raw)
	}
	return value, true, nil
}

// Set stores value under key, leaving other fields intact.
func (f *FirestoreStore) Set(key, value string) error {
	doc, err := f.doc()
	if err != nil {
		return err
	}
	ctx, cancel := f.callContext()
	defer cancel()

	if _, err := doc.Set(ctx, map[string]interface{}{key: value}, firestore.MergeAll); err != nil {
		log.Printf("[storage] firestore set %s FAILED err=%v", key, err)
		return errors.Wrapf(err, "firestore set %s", key)
	}
	return nil
}

// Remove deletes key. Removing from a missing document is not an error.
func (f *FirestoreStore) Remove(key string) error {
	doc, err := f.doc()
	if err != nil {
		return err
	}
	ctx, cancel := f.callContext()
	defer cancel()

	_, err = doc.Update(ctx, []firestore.Update{{Path: key, Value: firestore.Delete}})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		log.Printf("[storage] firestore remove %s FAILED err=%v", key, err)
		return errors.Wrapf(err, "firestore remove %s", key)
	}
	return nil
}
