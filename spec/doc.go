// Package spec loads the instruction-set descriptions a decompiler handle is
// configured with.
//
// A specification directory holds one or more *.ldefs XML files:
//
//	<language_definitions>
//	  <language processor="x86" endian="little" size="64" variant="default"
//	            version="1.0" slafile="x86-64.sla" id="x86:LE:64:default">
//	    <description>x86 64-bit</description>
//	  </language>
//	</language_definitions>
//
// plus the compiled specification files they reference. The files are only
// checked for presence; their contents belong to the engine.
package spec
