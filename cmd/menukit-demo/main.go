package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/menukit/core"
	"github.com/lixenwraith/menukit/input"
	"github.com/lixenwraith/menukit/menu"
	"github.com/lixenwraith/menukit/terminal"
	"github.com/lixenwraith/menukit/tui"
	"github.com/lixenwraith/menukit/ui"
)

const keymapFile = "keymap.toml"

func main() {
	scr, err := terminal.New()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}

	stack := menu.NewStack()
	session := ui.NewSession(scr, stack)
	session.SetMinSize(50, 14)
	session.ConfirmQuit("Quit the demo?")

	if data, err := os.ReadFile(keymapFile); err == nil {
		binds, err := input.LoadBindings(data)
		if err != nil {
			log.Fatalf("keymap: %v", err)
		}
		session.SetBindings(binds)
	}

	mainMenu := buildMainMenu(session)
	settingsMenu := buildSettingsMenu(session)
	stack.AddMenu("main", mainMenu)
	stack.AddMenu("settings", settingsMenu)

	session.OnResize(func(w, h int) {
		layoutMain(mainMenu, w, h)
		layoutSettings(settingsMenu, w, h)
	})

	if err := session.Run(); err != nil {
		log.Fatalf("session: %v", err)
	}
}

func buildMainMenu(session *ui.Session) *menu.Menu {
	m := menu.New()
	hb := core.NewHitbox(0, 0, 1, 1) // layout assigns real geometry

	m.Register(tui.NewBox("frame", hb, "menukit demo"), "")
	m.Register(tui.NewText("hint", hb, "arrows or hjkl move, Enter activates, q quits").Dim(), "")

	m.Register(tui.NewButton("about", hb, "About", func() {
		session.Info("Directional focus navigation\nover spatial hitboxes")
	}), "actions")
	m.Register(tui.NewButton("greet", hb, "Greet", func() {
		session.Prompt("Greeting", "Who should be greeted?", "world", func(name string) {
			session.Info(fmt.Sprintf("Hello, %s!", name))
		})
	}), "actions")
	m.Register(tui.NewButton("settings", hb, "Settings", func() {
		session.Stack().SetBackground("settings")
	}), "actions")
	m.Register(tui.NewButton("quit", hb, "Quit", func() {
		session.Confirm("Quit the demo?", session.Stop)
	}), "actions")

	m.Register(tui.NewChoose("palette", hb, []tui.ChooseItem{
		{Label: "Warning", Action: func() { session.Warning("Disk almost full") }},
		{Label: "Error", Action: func() { session.Error("Connection lost") }},
		{Label: "Info", Action: func() { session.Info("All systems nominal") }},
	}), "sidebar")

	return m
}

func layoutMain(m *menu.Menu, w, h int) {
	x := (w - 46) / 2
	y := (h - 12) / 2
	m.UpdateHitbox("frame", core.NewHitbox(x, y, 46, 12))
	m.UpdateHitbox("hint", core.NewHitbox(x+2, y+10, 42, 1))

	for i, id := range []string{"about", "greet", "settings", "quit"} {
		m.UpdateHitbox(id, core.NewHitbox(x+3, y+2+i*2, 14, 1))
	}
	m.UpdateHitbox("palette", core.NewHitbox(x+24, y+2, 18, 3))
}

func buildSettingsMenu(session *ui.Session) *menu.Menu {
	m := menu.New()
	hb := core.NewHitbox(0, 0, 1, 1)

	m.Register(tui.NewBox("frame", hb, "settings"), "")
	m.Register(tui.NewText("tone.label", hb, "Feedback").Dim(), "")
	m.Register(tui.NewToggle("tone", hb, "Edge tone", true, func(on bool) {
		session.Feedback().SetMuted(!on)
	}), "form")

	m.Register(tui.NewText("name.label", hb, "Operator").Dim(), "")
	m.Register(tui.NewTextInput("name", hb, "", 24, nil), "form")

	m.Register(tui.NewButton("back", hb, "Back", func() {
		session.Stack().SetBackground("main")
	}), "")

	return m
}

func layoutSettings(m *menu.Menu, w, h int) {
	x := (w - 40) / 2
	y := (h - 10) / 2
	m.UpdateHitbox("frame", core.NewHitbox(x, y, 40, 10))
	m.UpdateHitbox("tone.label", core.NewHitbox(x+2, y+2, 12, 1))
	m.UpdateHitbox("tone", core.NewHitbox(x+15, y+2, 20, 1))
	m.UpdateHitbox("name.label", core.NewHitbox(x+2, y+4, 12, 1))
	m.UpdateHitbox("name", core.NewHitbox(x+15, y+4, 20, 1))
	m.UpdateHitbox("back", core.NewHitbox(x+2, y+7, 10, 1))
}
