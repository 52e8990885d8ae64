// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/spp"
)

//////////////////////////////////////////////////////////////
// Menu entries
//////////////////////////////////////////////////////////////

// menuEntry is one selectable speaker action. A nil packet marks the
// rename entry, which needs text input before it can be sent.
type menuEntry struct {
	name   string
	desc   string
	packet []byte
}

// Implement list.Item interface
func (e menuEntry) Title() string       { return e.name }
func (e menuEntry) Description() string { return e.desc }
func (e menuEntry) FilterValue() string { return e.name }

func menuEntries() []list.Item {
	return []list.Item{
		menuEntry{"EQ: Out Loud", "Bass boost", lwacp.NewEQPreset(lwacp.EQOutLoud)},
		menuEntry{"EQ: Intimate", "Reduced bass", lwacp.NewEQPreset(lwacp.EQIntimate)},
		menuEntry{"EQ: Vocals", "Mid boost", lwacp.NewEQPreset(lwacp.EQVocals)},
		menuEntry{"EQ: Off", "Flat response", lwacp.NewEQPreset(lwacp.EQOff)},
		menuEntry{"Mode: Stereo", "Split L/R channels across two speakers", lwacp.NewDoubleUpMode(true)},
		menuEntry{"Mode: Double", "Same audio on both speakers", lwacp.NewDoubleUpMode(false)},
		menuEntry{"Role: Left", "This speaker plays the left channel", lwacp.NewDoubleUpRole(false)},
		menuEntry{"Role: Right", "This speaker plays the right channel", lwacp.NewDoubleUpRole(true)},
		menuEntry{"Auto-reconnect: On", "Double Up lock on", lwacp.NewDoubleUpLock(true)},
		menuEntry{"Auto-reconnect: Off", "Double Up lock off", lwacp.NewDoubleUpLock(false)},
		menuEntry{"Announce battery", "Speaker speaks its battery level", lwacp.NewBatteryAnnounce()},
		menuEntry{"Volume up", "One step louder", lwacp.NewVolumeAdjust(true, 1)},
		menuEntry{"Volume down", "One step quieter", lwacp.NewVolumeAdjust(false, 1)},
		menuEntry{"Alerts on", "Enable alert sounds", lwacp.NewAlertSound(1)},
		menuEntry{"Alerts off", "Disable alert sounds", lwacp.NewAlertSound(0)},
		menuEntry{"BLE on", "Enable the low-energy radio", lwacp.NewBLEState(true)},
		menuEntry{"BLE off", "Disable the low-energy radio", lwacp.NewBLEState(false)},
		menuEntry{"Set name", "Rename the speaker", nil},
		menuEntry{"Power-on sound", "Play the power-on chime", lwacp.NewPowerOnSound()},
	}
}

//////////////////////////////////////////////////////////////
// Styles
//////////////////////////////////////////////////////////////

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statusOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusBusyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

//////////////////////////////////////////////////////////////
// Model
//////////////////////////////////////////////////////////////

type actionDoneMsg struct {
	label string
	ok    bool
}

type menuModel struct {
	addr      string
	entries   list.Model
	nameInput textinput.Model
	renaming  bool
	busy      bool
	status    string
	style     lipgloss.Style
	width     int
	height    int
}

func newMenuModel(addr string) menuModel {
	entries := list.New(menuEntries(), list.NewDefaultDelegate(), 0, 0)
	entries.Title = fmt.Sprintf("UE Mini Boom — %s", addr)
	entries.SetShowHelp(false)
	entries.SetFilteringEnabled(false)
	entries.Styles.Title = menuTitleStyle

	ti := textinput.New()
	ti.Placeholder = "New speaker name"
	ti.CharLimit = lwacp.MaxNameBytes
	ti.Width = 34

	return menuModel{
		addr:      addr,
		entries:   entries,
		nameInput: ti,
		status:    "Select a command and press Enter.",
		style:     menuHelpStyle,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

//////////////////////////////////////////////////////////////
// Update
//////////////////////////////////////////////////////////////

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entries.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.ok {
			m.status = fmt.Sprintf("%s: sent.", msg.label)
			m.style = statusOKStyle
		} else {
			m.status = fmt.Sprintf("%s: failed — is the speaker connected?", msg.label)
			m.style = statusErrStyle
		}
		return m, nil

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRenaming(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			entry, ok := m.entries.SelectedItem().(menuEntry)
			if !ok {
				return m, nil
			}
			if entry.packet == nil {
				m.renaming = true
				m.nameInput.SetValue("")
				m.nameInput.Focus()
				return m, textinput.Blink
			}
			return m.startAction(entry.name, entry.packet)
		}
	}

	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)
	return m, cmd
}

func (m menuModel) updateRenaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.renaming = false
		return m, nil
	case "enter":
		name := m.nameInput.Value()
		m.renaming = false
		if name == "" {
			return m, nil
		}
		return m.startAction("Set name", lwacp.NewSetName(name))
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m menuModel) startAction(label string, packet []byte) (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = fmt.Sprintf("%s: sending...", label)
	m.style = statusBusyStyle
	addr := m.addr
	return m, func() tea.Msg {
		// Quiet client; the TUI owns the terminal.
		ok := spp.NewClient(addr).Send(packet)
		return actionDoneMsg{label: label, ok: ok}
	}
}

//////////////////////////////////////////////////////////////
// View
//////////////////////////////////////////////////////////////

func (m menuModel) View() string {
	if m.renaming {
		return fmt.Sprintf(
			"%s\n\nEnter new speaker name (max %d bytes):\n\n%s\n\n%s\n",
			menuTitleStyle.Render(fmt.Sprintf("UE Mini Boom — %s", m.addr)),
			lwacp.MaxNameBytes,
			m.nameInput.View(),
			menuHelpStyle.Render("enter: send • esc: cancel"),
		)
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n",
		m.entries.View(),
		m.style.Render(m.status),
		menuHelpStyle.Render("↑/↓: navigate • enter: send • q: quit"),
	)
}
