/*
Package ports defines the driven ports (interfaces) around the model assembler.

These interfaces decouple assembly from external implementations, allowing a
case to be exported to different engines and persisted in various backends.

# Key Interfaces

  - Exporter: hands an assembled Model over (OpenMC XML, YAML manifest).
  - ModelStore: persists and loads Model snapshots by case name.
  - GroupResolver: resolves energy group structure names to bin boundaries.
  - Locker: serialises writers of the same case across processes.
*/
package ports
