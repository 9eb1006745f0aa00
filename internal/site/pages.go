package site

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/storefront/internal/button"
	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
)

// Flash is a one-off status message shown above a form.
type Flash struct {
	Success bool
	Message string
}

// PageContext carries what a page may read while rendering.
type PageContext struct {
	Site    config.Site
	Path    string
	Actions *Actions
	Flash   *Flash
	Log     *logger.Logger
}

// control builds a button for a page and logs anything noteworthy about it.
func (ctx PageContext) control(name string, cfg button.Config) button.Result {
	res := button.Build(cfg)
	fields := map[string]any{"control": name, "path": ctx.Path}
	if res.Empty() {
		ctx.Log.WithFields(fields).Warn(res.Reason(), "control builds to nothing")
	}
	for _, w := range res.Warnings() {
		ctx.Log.WithFields(fields).Debug(w.Error())
	}
	return res
}

// action renders a registered action's control, or nothing.
func (ctx PageContext) action(name string) g.Node {
	if ctx.Actions == nil {
		return nil
	}
	res, ok := ctx.Actions.Result(name)
	if !ok {
		return nil
	}
	return res
}

func section(children ...g.Node) g.Node {
	return h.Section(h.Class("max-w-7xl mx-auto px-4 py-10 space-y-6"), g.Group(children))
}

func heading(text string) g.Node {
	return h.H1(h.Class("text-3xl font-bold"), g.Text(text))
}

func paragraph(text string) g.Node {
	return h.P(h.Class("text-gray-700"), g.Text(text))
}

// HomePage greets the visitor and offers the newsletter form.
func HomePage(ctx PageContext) g.Node {
	return section(
		heading("Welcome to "+ctx.Site.Brand),
		paragraph("Everything you need, delivered to your door."),
		h.Div(h.Class("flex gap-4"),
			ctx.control("shop", button.Config{
				Kind:    button.LinkKind{Href: "/gallery"},
				Style:   button.Style{Color: button.ColorPrimary, Size: button.SizeLarge},
				Content: g.Text("Shop now"),
			}),
			ctx.control("learn-more", button.Config{
				Kind:    button.LinkKind{Href: "/about"},
				Style:   button.Style{Color: button.ColorPrimary, Variant: button.VariantOutline, Size: button.SizeLarge},
				Content: g.Text("Learn more"),
			}),
		),
		g.If(ctx.Flash != nil, flash(ctx.Flash)),
		h.Form(h.Method("post"), h.Action("/subscribe"), h.Class("flex gap-2"),
			h.Input(h.Type("email"), h.Name("email"), h.Required(), h.Placeholder("you@example.com"), h.Class("border rounded px-3 py-2")),
			ctx.action("subscribe"),
		),
	)
}

// AboutPage describes the shop.
func AboutPage(ctx PageContext) g.Node {
	return section(
		heading("About"),
		paragraph(ctx.Site.Brand+" is a small independent store."),
	)
}

// ContactPage lists how to reach the shop.
func ContactPage(ctx PageContext) g.Node {
	return section(
		heading("Contact"),
		paragraph("Questions about an order? We usually answer within a day."),
		ctx.control("email-us", button.Config{
			Kind:     button.LinkKind{Href: "mailto:support@example.com"},
			Style:    button.Style{Color: button.ColorInfo, Shape: button.ShapePill},
			Content:  g.Text("Email us"),
			Trailing: g.Text("✉"),
		}),
	)
}

// SignUpPage renders the registration form and any flash from a submission.
func SignUpPage(ctx PageContext) g.Node {
	return section(
		heading("Sign Up"),
		g.If(ctx.Flash != nil, flash(ctx.Flash)),
		h.Form(h.Method("post"), h.Action("/signUp"), h.Class("flex flex-col gap-4 max-w-md"),
			h.Label(h.For("email"), g.Text("Email")),
			h.Input(h.ID("email"), h.Type("email"), h.Name("email"), h.Required(), h.Class("border rounded px-3 py-2")),
			h.Label(h.For("password"), g.Text("Password")),
			h.Input(h.ID("password"), h.Type("password"), h.Name("password"), h.Required(), h.Class("border rounded px-3 py-2")),
			h.Div(h.Class("flex gap-2"),
				ctx.control("signup-submit", button.Config{
					Kind:  button.InputKind{Subtype: button.InputSubmit, Value: "Sign Up"},
					Style: button.Style{Color: button.ColorPrimary},
				}),
				ctx.control("signup-reset", button.Config{
					Kind:  button.InputKind{Subtype: button.InputReset, Value: "Clear"},
					Style: button.Style{Variant: button.VariantGhost},
				}),
			),
		),
	)
}

func flash(f *Flash) g.Node {
	if f == nil {
		return nil
	}
	class := "rounded px-4 py-3 bg-red-100 text-red-800"
	if f.Success {
		class = "rounded px-4 py-3 bg-green-100 text-green-800"
	}
	return h.Div(h.Class(class), g.Attr("role", "status"), g.Text(f.Message))
}

// ErrorPage is rendered for unknown paths.
func ErrorPage(ctx PageContext) g.Node {
	return section(
		heading("Page not found"),
		paragraph("The page you were looking for does not exist."),
		ctx.control("back-home", button.Config{
			Kind:    button.LinkKind{Href: "/"},
			Style:   button.Style{Color: button.ColorSecondary},
			Leading: g.Text("←"),
			Content: g.Text("Back home"),
		}),
	)
}

// GalleryPage shows every registered control, including those that build to
// nothing, with the reason.
func GalleryPage(ctx PageContext) g.Node {
	var names []string
	if ctx.Actions != nil {
		names = ctx.Actions.Names()
	}
	return section(
		heading("Buttons"),
		h.Ul(h.Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
			g.Map(names, func(name string) g.Node {
				res, _ := ctx.Actions.Result(name)
				return h.Li(h.Class("flex items-center justify-between gap-4"),
					h.Code(h.Class("text-sm text-gray-500"), g.Text(name)),
					g.If(!res.Empty(), res),
					g.If(res.Empty(), h.Span(h.Class("text-sm italic text-gray-400"), g.Text(emptyLabel(res)))),
				)
			}),
		),
	)
}

func emptyLabel(res button.Result) string {
	if res.Reason() == nil {
		return "empty"
	}
	return "empty: " + res.Reason().Error()
}
