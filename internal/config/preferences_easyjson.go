// ABOUTME: easyjson codec for HudPreferences (jlexer/jwriter, no reflection)
// ABOUTME: Unknown keys are skipped and absent keys leave the receiver's values untouched

package config

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ easyjson.Marshaler   = HudPreferences{}
	_ easyjson.Unmarshaler = (*HudPreferences)(nil)
)

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v HudPreferences) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"x":`)
	w.Int(v.X)
	w.RawString(`,"y":`)
	w.Int(v.Y)
	w.RawString(`,"font_size":`)
	w.Int(v.FontSize)
	w.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v HudPreferences) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	v.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *HudPreferences) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "x", "X":
			v.X = in.Int()
		case "y", "Y":
			v.Y = in.Int()
		case "font_size", "fontSize", "FontSize":
			v.FontSize = in.Int()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *HudPreferences) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	v.UnmarshalEasyJSON(&r)
	return r.Error()
}
