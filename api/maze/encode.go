package mazeapi

import (
	"github.com/beka-birhanu/labiri-api/maze"
	"google.golang.org/protobuf/types/known/structpb"
)

// snapshotStruct converts a snapshot into a protobuf Struct with the same
// field names as its JSON form.
func snapshotStruct(s maze.Snapshot) (*structpb.Struct, error) {
	cells := make([]interface{}, len(s.Cells))
	for idx, c := range s.Cells {
		cells[idx] = map[string]interface{}{
			"top":    c.Top,
			"bottom": c.Bottom,
			"left":   c.Left,
			"right":  c.Right,
		}
	}

	return structpb.NewStruct(map[string]interface{}{
		"cols":   s.Cols,
		"rows":   s.Rows,
		"cells":  cells,
		"player": positionMap(s.Player),
		"exit":   positionMap(s.Exit),
		"score":  s.Score,
		"level":  s.Level,
	})
}

func positionMap(p maze.Position) map[string]interface{} {
	return map[string]interface{}{"col": p.Col, "row": p.Row}
}
