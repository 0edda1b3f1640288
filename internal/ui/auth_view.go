package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/woocommerce"
)

// buildAuthView shows the login and registration forms side by side
func (ui *RootUI) buildAuthView() fyne.CanvasObject {
	return container.NewVScroll(container.NewGridWithColumns(2,
		widget.NewCard(ui.localization.GetText(KeyLoginTitle), "", ui.loginForm()),
		widget.NewCard(ui.localization.GetText(KeyRegisterTitle), "", ui.registerForm()),
	))
}

func (ui *RootUI) loginForm() fyne.CanvasObject {
	username := widget.NewEntry()
	password := widget.NewPasswordEntry()

	form := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyUsername), username),
		widget.NewFormItem(ui.localization.GetText(KeyPassword), password),
	)
	form.SubmitText = ui.localization.GetText(KeyLogin)
	form.OnSubmit = func() {
		creds := woocommerce.Credentials{Username: strings.TrimSpace(username.Text), Password: password.Text}
		if creds.Username == "" || creds.Password == "" {
			ui.showToast(ui.localization.GetText(KeyFieldsRequired))
			return
		}

		form.Disable()
		ui.showNotification(ui.localization.GetText(KeyLoading), true)
		ui.background(func(ctx context.Context) {
			_, err := ui.svc.Session.Login(ctx, creds)
			fyne.Do(func() {
				form.Enable()
				if err != nil {
					password.SetText("")
					ui.showError(KeyLoginFailed, err)
					return
				}
				ui.showToast(ui.localization.GetText(KeyLoginSuccess))
				ui.Navigate(ViewProducts)
			})
		})
	}
	return form
}

func (ui *RootUI) registerForm() fyne.CanvasObject {
	name := widget.NewEntry()
	username := widget.NewEntry()
	email := widget.NewEntry()
	email.Validator = validation.NewRegexp(EmailPattern, ui.localization.GetText(KeyInvalidEmail))
	password := widget.NewPasswordEntry()

	form := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyName), name),
		widget.NewFormItem(ui.localization.GetText(KeyUsername), username),
		widget.NewFormItem(ui.localization.GetText(KeyEmail), email),
		widget.NewFormItem(ui.localization.GetText(KeyPassword), password),
	)
	form.SubmitText = ui.localization.GetText(KeyRegister)
	form.OnSubmit = func() {
		reg := woocommerce.Registration{
			Name:     strings.TrimSpace(name.Text),
			Username: strings.TrimSpace(username.Text),
			Email:    strings.TrimSpace(email.Text),
			Password: password.Text,
		}
		if reg.Name == "" || reg.Username == "" || reg.Email == "" || reg.Password == "" {
			ui.showToast(ui.localization.GetText(KeyFieldsRequired))
			return
		}

		form.Disable()
		ui.showNotification(ui.localization.GetText(KeyLoading), true)
		ui.background(func(ctx context.Context) {
			_, err := ui.svc.Session.Register(ctx, reg)
			fyne.Do(func() {
				form.Enable()
				if err != nil {
					ui.showError(KeyRegisterFailed, err)
					return
				}
				for _, entry := range []*widget.Entry{name, username, email, password} {
					entry.SetText("")
				}
				ui.showToast(ui.localization.GetText(KeyRegisterSuccess))
			})
		})
	}
	return form
}
