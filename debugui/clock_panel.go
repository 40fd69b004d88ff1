package debugui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
)

type ClockPanel struct {
	clock ClockView
}

func NewClockPanel(clock ClockView) *ClockPanel {
	return &ClockPanel{clock: clock}
}

func (p *ClockPanel) Render() {
	s := p.clock.Latest()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 190), imgui.CondOnce)
	if !imgui.BeginV("Clock", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", s.State))
	if s.Frozen {
		imgui.Text("Game source failed, view only")
	}
	imgui.Text(fmt.Sprintf("Angle: %.4f rad (%.1f deg)", s.Angle, s.Angle*180/math.Pi))
	imgui.Text(fmt.Sprintf("Tick: %d", s.Tick))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", s.Score))
	imgui.Text(fmt.Sprintf("Game updates: %d", s.Updates))
	imgui.Text(fmt.Sprintf("Panel alpha: %.2f", s.PanelAlpha))
	imgui.Text(fmt.Sprintf("Invalid colors seen: %d", p.clock.InvalidColors()))

	imgui.End()
}
