package constant

// AsciiArtLogo is rendered on the root command help screen.
const AsciiArtLogo = `
  ██╗     ██╗██████╗ ███████╗██████╗ ████████╗ █████╗
  ██║     ██║██╔══██╗██╔════╝██╔══██╗╚══██╔══╝██╔══██╗
  ██║     ██║██████╔╝█████╗  ██████╔╝   ██║   ███████║
  ██║     ██║██╔══██╗██╔══╝  ██╔══██╗   ██║   ██╔══██║
  ███████╗██║██████╔╝███████╗██║  ██║   ██║   ██║  ██║
  ╚══════╝╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝
`
