package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// EntityInspector lists every entity of a storage and prints the components
// of the selected one.
type EntityInspector struct {
	storage  *ecs.Storage
	selected ecs.EntityId
}

func NewEntityInspector(storage *ecs.Storage) *EntityInspector {
	return &EntityInspector{storage: storage}
}

// EntityRow is one line of the entity table.
type EntityRow struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

// Rows returns the entities of the storage grouped by archetype.
func (ei *EntityInspector) Rows() []EntityRow {
	var rows []EntityRow
	for archetype := range ei.storage.Archetypes() {
		types := make([]string, 0, len(archetype.Types()))
		for _, t := range archetype.Types() {
			types = append(types, t.String())
		}
		for id := range archetype.Iter() {
			rows = append(rows, EntityRow{ID: id, ArchetypeID: archetype.ID(), ComponentTypes: types})
		}
	}
	return rows
}

// Describe formats the components of id, one per line.
func (ei *EntityInspector) Describe(id ecs.EntityId) []string {
	var lines []string
	for archetype := range ei.storage.Archetypes() {
		if archetype.ID() != id.ArchetypeId() {
			continue
		}
		for _, t := range archetype.Types() {
			if component := ei.storage.GetComponent(id, t); component != nil {
				lines = append(lines, fmt.Sprintf("%s: %+v", t.String(), component))
			}
		}
	}
	return lines
}

func (ei *EntityInspector) Render() {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, row := range ei.Rows() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ei.selected == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ei.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", row.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	imgui.Separator()
	if ei.selected == 0 {
		imgui.Text("No entity selected")
	} else {
		for _, line := range ei.Describe(ei.selected) {
			imgui.BulletText(line)
		}
	}

	imgui.End()
}
