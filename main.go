package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/orders"
	"github.com/ytget/storefront/internal/platform"
	"github.com/ytget/storefront/internal/session"
	"github.com/ytget/storefront/internal/storage"
	"github.com/ytget/storefront/internal/ui"
	"github.com/ytget/storefront/internal/woocommerce"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.storefront"
	AppName = "Storefront"

	WindowWidth  = 1024
	WindowHeight = 720

	firestoreDialTimeout = 20 * time.Second
)

func main() {
	log.Printf("[main] %s v%s starting", AppName, version)

	env, warnings, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("[main] config FAILED err=%v", err)
	}
	for _, w := range warnings {
		log.Printf("[main] config warning: %s", w)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewStoreTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	store, closeStore := openStore(myApp, env)
	defer closeStore()

	settings := config.NewSettings(myApp)

	api := woocommerce.New(woocommerce.Options{
		ProjectURL:           env.ProjectURL,
		ConsumerKey:          env.ConsumerKey,
		ConsumerSecret:       env.ConsumerSecret,
		RegistrationUser:     env.RegistrationUser,
		RegistrationPassword: env.RegistrationPassword,
		Timeout:              env.HTTPTimeout,
	})

	cartStore := cart.NewStore(store)
	cartStore.Hydrate()

	holder := session.NewHolder(api, store)
	holder.Hydrate()

	ui.NewRootUI(myWindow, settings, ui.Services{
		Cart:    cartStore,
		Session: holder,
		Orders:  orders.NewService(api, cartStore, holder, store),
		Catalog: catalog.NewBrowser(api, settings.GetProductsPerPage()),
		Images:  platform.NewImageLoader(nil, platform.DefaultImageCache),
	})

	myWindow.ShowAndRun()
}

// openStore picks the persistence backend named by env. A Firestore that
// cannot be reached falls back to the app preferences.
func openStore(a fyne.App, env config.Env) (storage.Store, func()) {
	switch env.Store {
	case config.StoreMemory:
		log.Printf("[main] store=memory, nothing survives a restart")
		return storage.NewMemoryStore(), func() {}
	case config.StoreFirestore:
		ctx, cancel := context.WithTimeout(context.Background(), firestoreDialTimeout)
		defer cancel()

		client, err := storage.NewFirestoreClient(ctx, env.FirestoreProject, env.FirestoreCredentials)
		if err != nil {
			log.Printf("[main] firestore FAILED project=%s err=%v, using preferences", env.FirestoreProject, err)
			break
		}
		log.Printf("[main] store=firestore project=%s profile=%s", env.FirestoreProject, env.Profile)
		return storage.NewFirestoreStore(client, env.Profile), func() {
			if err := client.Close(); err != nil {
				log.Printf("[main] firestore close FAILED err=%v", err)
			}
		}
	}
	return storage.NewPreferencesStore(a), func() {}
}
