package boot

// Lines is the fixed boot transcript, revealed one entry at a time in
// declaration order. Blank entries render as blank lines.
var Lines = []string{
	"╔══════════════════════════════════════╗",
	"║  CRTCAST TERMINAL SYSTEM v2.4        ║",
	"║  (c) 1984 HEXCHROME DYNAMICS         ║",
	"╚══════════════════════════════════════╝",
	"",
	"MEMORY CHECK .............. 64K OK",
	"PHOSPHOR ARRAY ............ OK",
	"CHRONO MODULE ............. SYNCED",
	"WEATHER BUS ............... ATTACHED",
	"NEWSWIRE UPLINK ........... ATTACHED",
	"SPEECH SYNTHESIZER ........ PROBING",
	"",
	"ALL SYSTEMS NOMINAL.",
	"",
}
